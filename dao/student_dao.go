// dao/student_dao.go
package dao

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/kada-connect/api/audit"
	kada_errors "github.com/kada-connect/api/errors"
	logger "github.com/kada-connect/api/logging"
	"github.com/kada-connect/api/model"
)

type StudentDAO struct {
	Pool         *pgxpool.Pool
	AuditService audit.Service
}

func NewStudentDAO(pool *pgxpool.Pool, auditService audit.Service) *StudentDAO {
	dao := &StudentDAO{Pool: pool, AuditService: auditService}
	ctx := context.Background()
	if err := dao.EnsureSchema(ctx); err != nil {
		logger.Fatal("Failed to ensure students schema", zap.Error(err))
	}
	return dao
}

func (dao *StudentDAO) EnsureSchema(ctx context.Context) error {
	_, err := dao.Pool.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS students (
            id          UUID PRIMARY KEY,
            name        TEXT NOT NULL,
            email       TEXT NOT NULL UNIQUE,
            tech_role   TEXT NOT NULL DEFAULT '',
            tech_skills TEXT[] NOT NULL DEFAULT '{}',
            university  TEXT NOT NULL DEFAULT '',
            major       TEXT NOT NULL DEFAULT '',
            bio         TEXT NOT NULL DEFAULT '',
            photo_url   TEXT NOT NULL DEFAULT '',
            owner_id    TEXT NOT NULL DEFAULT '',
            created_at  TIMESTAMPTZ NOT NULL,
            updated_at  TIMESTAMPTZ NOT NULL
        )`)
	if err != nil {
		logger.Error("Failed to ensure students table", zap.Error(err))
		return err
	}
	return nil
}

func (dao *StudentDAO) CreateStudent(ctx context.Context, student model.Student) (string, error) {
	start := time.Now()
	logger.Info("Creating new student", zap.String("name", student.Name))

	if student.ID == "" {
		student.ID = uuid.New().String()
	}

	_, err := dao.Pool.Exec(ctx, `
        INSERT INTO students (id, name, email, tech_role, tech_skills, university, major, bio, photo_url, owner_id, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		student.ID, student.Name, student.Email, student.TechRole, student.TechSkills,
		student.University, student.Major, student.Bio, student.PhotoURL, student.OwnerID,
		student.CreatedAt, student.UpdatedAt)

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to create student",
			zap.Error(err),
			zap.String("name", student.Name),
			zap.Duration("duration", duration))
		return "", kada_errors.ErrDatabaseOperation
	}

	logger.Info("Student created successfully",
		zap.String("studentID", student.ID),
		zap.Duration("duration", duration))

	dao.logAudit(ctx, student.OwnerID, "create", student.ID, student)
	return student.ID, nil
}

func (dao *StudentDAO) UpdateStudent(ctx context.Context, student model.Student) (*model.Student, error) {
	start := time.Now()
	logger.Info("Updating student", zap.String("studentID", student.ID))

	tag, err := dao.Pool.Exec(ctx, `
        UPDATE students
        SET name = $2, email = $3, tech_role = $4, tech_skills = $5, university = $6,
            major = $7, bio = $8, photo_url = $9, updated_at = $10
        WHERE id = $1`,
		student.ID, student.Name, student.Email, student.TechRole, student.TechSkills,
		student.University, student.Major, student.Bio, student.PhotoURL, student.UpdatedAt)

	duration := time.Since(start)
	if err != nil {
		logger.Error("Failed to update student",
			zap.Error(err),
			zap.String("studentID", student.ID),
			zap.Duration("duration", duration))
		return nil, kada_errors.ErrDatabaseOperation
	}
	if tag.RowsAffected() == 0 {
		return nil, kada_errors.ErrStudentNotFound
	}

	updated, err := dao.GetStudent(ctx, student.ID)
	if err != nil {
		return nil, err
	}

	logger.Info("Student updated successfully",
		zap.String("studentID", student.ID),
		zap.Duration("duration", duration))

	dao.logAudit(ctx, student.OwnerID, "update", student.ID, updated)
	return updated, nil
}

func (dao *StudentDAO) DeleteStudent(ctx context.Context, studentID string) error {
	tag, err := dao.Pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, studentID)
	if err != nil {
		logger.Error("Failed to delete student", zap.Error(err), zap.String("studentID", studentID))
		return kada_errors.ErrDatabaseOperation
	}
	if tag.RowsAffected() == 0 {
		return kada_errors.ErrStudentNotFound
	}

	logger.Info("Student deleted successfully", zap.String("studentID", studentID))
	dao.logAudit(ctx, "", "delete", studentID, nil)
	return nil
}

func (dao *StudentDAO) GetStudent(ctx context.Context, studentID string) (*model.Student, error) {
	row := dao.Pool.QueryRow(ctx, `
        SELECT id, name, email, tech_role, tech_skills, university, major, bio, photo_url, owner_id, created_at, updated_at
        FROM students WHERE id = $1`, studentID)

	var student model.Student
	err := row.Scan(&student.ID, &student.Name, &student.Email, &student.TechRole,
		&student.TechSkills, &student.University, &student.Major, &student.Bio,
		&student.PhotoURL, &student.OwnerID, &student.CreatedAt, &student.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, kada_errors.ErrStudentNotFound
	}
	if err != nil {
		logger.Error("Failed to get student", zap.Error(err), zap.String("studentID", studentID))
		return nil, kada_errors.ErrDatabaseOperation
	}

	return &student, nil
}

func (dao *StudentDAO) ListStudents(ctx context.Context, limit, offset int) ([]*model.Student, error) {
	rows, err := dao.Pool.Query(ctx, `
        SELECT id, name, email, tech_role, tech_skills, university, major, bio, photo_url, owner_id, created_at, updated_at
        FROM students ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		logger.Error("Failed to list students", zap.Error(err))
		return nil, kada_errors.ErrDatabaseOperation
	}
	defer rows.Close()

	return scanStudents(rows)
}

// ListAllStudents returns the entire collection; used by popularity ranking
// which counts role, skill, university and major references.
func (dao *StudentDAO) ListAllStudents(ctx context.Context) ([]model.Student, error) {
	rows, err := dao.Pool.Query(ctx, `
        SELECT id, name, email, tech_role, tech_skills, university, major, bio, photo_url, owner_id, created_at, updated_at
        FROM students ORDER BY created_at`)
	if err != nil {
		logger.Error("Failed to list all students", zap.Error(err))
		return nil, kada_errors.ErrDatabaseOperation
	}
	defer rows.Close()

	students, err := scanStudents(rows)
	if err != nil {
		return nil, err
	}
	out := make([]model.Student, len(students))
	for i, s := range students {
		out[i] = *s
	}
	return out, nil
}

func (dao *StudentDAO) SearchStudents(ctx context.Context, query string, limit, offset int) ([]*model.Student, error) {
	pattern := "%" + query + "%"
	rows, err := dao.Pool.Query(ctx, `
        SELECT id, name, email, tech_role, tech_skills, university, major, bio, photo_url, owner_id, created_at, updated_at
        FROM students
        WHERE name ILIKE $1 OR tech_role ILIKE $1 OR university ILIKE $1 OR major ILIKE $1
        ORDER BY created_at DESC LIMIT $2 OFFSET $3`, pattern, limit, offset)
	if err != nil {
		logger.Error("Failed to search students", zap.Error(err), zap.String("query", query))
		return nil, kada_errors.ErrDatabaseOperation
	}
	defer rows.Close()

	return scanStudents(rows)
}

func scanStudents(rows pgx.Rows) ([]*model.Student, error) {
	var students []*model.Student
	for rows.Next() {
		var student model.Student
		if err := rows.Scan(&student.ID, &student.Name, &student.Email, &student.TechRole,
			&student.TechSkills, &student.University, &student.Major, &student.Bio,
			&student.PhotoURL, &student.OwnerID, &student.CreatedAt, &student.UpdatedAt); err != nil {
			return nil, kada_errors.ErrDatabaseOperation
		}
		students = append(students, &student)
	}
	if err := rows.Err(); err != nil {
		return nil, kada_errors.ErrDatabaseOperation
	}
	return students, nil
}

func (dao *StudentDAO) logAudit(ctx context.Context, actorID, action, studentID string, payload interface{}) {
	if dao.AuditService == nil {
		return
	}
	var details json.RawMessage
	if payload != nil {
		details, _ = json.Marshal(payload)
	}
	auditLog := audit.AuditLog{
		Timestamp:  time.Now(),
		ActorID:    actorID,
		Action:     action,
		Resource:   "student",
		ResourceID: studentID,
		Success:    true,
		Details:    details,
	}
	if err := dao.AuditService.LogAction(ctx, auditLog); err != nil {
		logger.Warn("Failed to write audit log", zap.Error(err), zap.String("studentID", studentID))
	}
}
