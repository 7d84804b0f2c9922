// internal/pkg/config/secrets.go
package config

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

// SecretsManager resolves credentials by key. Keys it does not know are
// left out of the result.
type SecretsManager interface {
	GetSecrets(ctx context.Context, keys []string) (map[string]string, error)
}

var (
	_ SecretsManager = (*AWSSecretsManager)(nil)
	_ SecretsManager = (*EnvSecretsManager)(nil)
)

// secretsTTL bounds how long a fetched secret document is reused
const secretsTTL = 5 * time.Minute

// AWSSecretsManager reads one JSON secret document from AWS Secrets Manager
type AWSSecretsManager struct {
	client     *secretsmanager.Client
	secretName string
	logger     *slog.Logger

	mu        sync.Mutex
	values    map[string]string
	fetchedAt time.Time
}

// NewAWSSecretsManager creates a Secrets Manager client for region
func NewAWSSecretsManager(region, secretName string, logger *slog.Logger) (*AWSSecretsManager, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &AWSSecretsManager{
		client:     secretsmanager.NewFromConfig(cfg),
		secretName: secretName,
		logger:     logger.With(slog.String("component", "secrets")),
	}, nil
}

// GetSecrets picks keys out of the secret document, fetching it when the
// cached copy is older than secretsTTL
func (sm *AWSSecretsManager) GetSecrets(ctx context.Context, keys []string) (map[string]string, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.values == nil || time.Since(sm.fetchedAt) > secretsTTL {
		if err := sm.fetch(ctx); err != nil {
			return nil, err
		}
	}

	out := make(map[string]string, len(keys))
	for _, key := range keys {
		if v, ok := sm.values[key]; ok {
			out[key] = v
			continue
		}
		sm.logger.WarnContext(ctx, "secret key not found", slog.String("key", key))
	}
	return out, nil
}

func (sm *AWSSecretsManager) fetch(ctx context.Context) error {
	sm.logger.InfoContext(ctx, "fetching secrets", slog.String("secret_name", sm.secretName))

	result, err := sm.client.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(sm.secretName),
		VersionStage: aws.String("AWSCURRENT"),
	})
	if err != nil {
		return fmt.Errorf("failed to get secret value: %w", err)
	}
	if result.SecretString == nil {
		return fmt.Errorf("secret %s has no string value", sm.secretName)
	}

	var values map[string]string
	if err := json.Unmarshal([]byte(*result.SecretString), &values); err != nil {
		return fmt.Errorf("failed to parse secret JSON: %w", err)
	}

	sm.values = values
	sm.fetchedAt = time.Now()
	return nil
}

// EnvSecretsManager reads secrets from environment variables
type EnvSecretsManager struct{}

// NewEnvSecretsManager creates a new environment-based secrets manager
func NewEnvSecretsManager() *EnvSecretsManager {
	return &EnvSecretsManager{}
}

// GetSecrets returns the keys that are set and non-empty
func (em *EnvSecretsManager) GetSecrets(_ context.Context, keys []string) (map[string]string, error) {
	secrets := make(map[string]string, len(keys))
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			secrets[key] = val
		}
	}
	return secrets, nil
}
