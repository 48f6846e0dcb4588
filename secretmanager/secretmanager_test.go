package secretmanager

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/stretchr/testify/assert"
)

type stubSecretsClient struct {
	output *secretsmanager.GetSecretValueOutput
	err    error
}

func (s stubSecretsClient) GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.output, nil
}

func stubAWS(t *testing.T, client secretsManagerAPI) {
	t.Helper()
	originalLoad := loadDefaultConfig
	originalNew := newSecretsManagerClient
	loadDefaultConfig = func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, nil
	}
	newSecretsManagerClient = func(cfg aws.Config) secretsManagerAPI { return client }
	t.Cleanup(func() {
		loadDefaultConfig = originalLoad
		newSecretsManagerClient = originalNew
	})
}

func TestGetSecretLoadConfigError(t *testing.T) {
	originalLoad := loadDefaultConfig
	loadDefaultConfig = func(ctx context.Context, optFns ...func(*config.LoadOptions) error) (aws.Config, error) {
		return aws.Config{}, errors.New("config error")
	}
	defer func() { loadDefaultConfig = originalLoad }()

	_, err := GetSecret("prod/campus-events/admin")
	assert.Error(t, err)
}

func TestGetSecretClientError(t *testing.T) {
	stubAWS(t, stubSecretsClient{err: errors.New("client error")})
	_, err := GetSecret("prod/campus-events/admin")
	assert.Error(t, err)
}

func TestGetSecretNoStringValue(t *testing.T) {
	stubAWS(t, stubSecretsClient{output: &secretsmanager.GetSecretValueOutput{}})
	_, err := GetSecret("prod/campus-events/admin")
	assert.Error(t, err)
}

func TestGetSecretSuccess(t *testing.T) {
	stubAWS(t, stubSecretsClient{output: &secretsmanager.GetSecretValueOutput{SecretString: aws.String(`{"ADMIN_USERNAME":"root"}`)}})
	value, err := GetSecret("prod/campus-events/admin")
	assert.NoError(t, err)
	assert.Equal(t, `{"ADMIN_USERNAME":"root"}`, value)
}

func TestNewSecretsManagerClientDefault(t *testing.T) {
	client := newSecretsManagerClient(aws.Config{})
	assert.NotNil(t, client)
}
