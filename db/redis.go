// db/redis.go
package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	logger "github.com/kada-connect/api/logging"
	"github.com/kada-connect/api/model"
)

var RedisClient *redis.Client

func InitRedis() error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:         viper.GetString("redis.addr"),
		Password:     viper.GetString("redis.password"),
		DB:           viper.GetInt("redis.db"),
		DialTimeout:  viper.GetDuration("redis.dialTimeout"),
		ReadTimeout:  viper.GetDuration("redis.readTimeout"),
		WriteTimeout: viper.GetDuration("redis.writeTimeout"),
		PoolSize:     viper.GetInt("redis.poolSize"),
		PoolTimeout:  viper.GetDuration("redis.poolTimeout"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Successfully connected to Redis")
	return nil
}

func CloseRedis() {
	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}
}

func CacheCompany(ctx context.Context, company *model.Company) error {
	companyJSON, err := json.Marshal(company)
	if err != nil {
		return fmt.Errorf("failed to marshal company: %w", err)
	}

	key := fmt.Sprintf("company:%s", company.ID)
	defaultTTL := viper.GetDuration("redis.defaultCacheTTL")
	err = RedisClient.Set(ctx, key, companyJSON, defaultTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to cache company: %w", err)
	}

	logger.Debug("Company cached successfully", zap.String("companyID", company.ID))
	return nil
}

func GetCachedCompany(ctx context.Context, companyID string) (*model.Company, error) {
	key := fmt.Sprintf("company:%s", companyID)
	companyJSON, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Debug("Company not found in cache", zap.String("companyID", companyID))
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get company from cache: %w", err)
	}

	var company model.Company
	err = json.Unmarshal([]byte(companyJSON), &company)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal company: %w", err)
	}

	logger.Debug("Company retrieved from cache", zap.String("companyID", companyID))
	return &company, nil
}

func DeleteCachedCompany(ctx context.Context, companyID string) error {
	key := fmt.Sprintf("company:%s", companyID)
	err := RedisClient.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to delete company from cache: %w", err)
	}
	logger.Debug("Company deleted from cache", zap.String("companyID", companyID))
	return nil
}

func CacheStudent(ctx context.Context, student *model.Student) error {
	studentJSON, err := json.Marshal(student)
	if err != nil {
		return fmt.Errorf("failed to marshal student: %w", err)
	}

	key := fmt.Sprintf("student:%s", student.ID)
	defaultTTL := viper.GetDuration("redis.defaultCacheTTL")
	err = RedisClient.Set(ctx, key, studentJSON, defaultTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to cache student: %w", err)
	}

	logger.Debug("Student cached successfully", zap.String("studentID", student.ID))
	return nil
}

func GetCachedStudent(ctx context.Context, studentID string) (*model.Student, error) {
	key := fmt.Sprintf("student:%s", studentID)
	studentJSON, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Debug("Student not found in cache", zap.String("studentID", studentID))
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get student from cache: %w", err)
	}

	var student model.Student
	err = json.Unmarshal([]byte(studentJSON), &student)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal student: %w", err)
	}

	logger.Debug("Student retrieved from cache", zap.String("studentID", studentID))
	return &student, nil
}

func DeleteCachedStudent(ctx context.Context, studentID string) error {
	key := fmt.Sprintf("student:%s", studentID)
	err := RedisClient.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to delete student from cache: %w", err)
	}
	logger.Debug("Student deleted from cache", zap.String("studentID", studentID))
	return nil
}

func RateLimit(ctx context.Context, key string, limit int, per time.Duration) (bool, error) {
	pipe := RedisClient.Pipeline()
	now := time.Now().UnixNano()
	key = fmt.Sprintf("ratelimit:%s", key)

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", now-(per.Nanoseconds())))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: now})
	pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, per)

	cmds, err := pipe.Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to execute rate limit commands: %w", err)
	}

	count := cmds[2].(*redis.IntCmd).Val()
	allowed := count <= int64(limit)
	logger.Debug("Rate limit check",
		zap.String("key", key),
		zap.Int64("count", count),
		zap.Int("limit", limit),
		zap.Bool("allowed", allowed))
	return allowed, nil
}
