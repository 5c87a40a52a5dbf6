package database

import (
	"context"
	"testing"

	appconfig "orcamentos_rtv/internal/config"
)

func TestNewAWSConfig_StaticCredentials(t *testing.T) {
	cfg, err := NewAWSConfig(context.Background(), appconfig.DynamoConfig{
		Region:          "sa-east-1",
		AccessKeyID:     "local",
		SecretAccessKey: "secret",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Region != "sa-east-1" {
		t.Fatalf("expected region sa-east-1, got %s", cfg.Region)
	}

	creds, err := cfg.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("unexpected error retrieving credentials: %v", err)
	}
	if creds.AccessKeyID != "local" || creds.SecretAccessKey != "secret" {
		t.Fatalf("unexpected credentials: %+v", creds)
	}
}

func TestConnectDynamoDB_Endpoint(t *testing.T) {
	client, err := ConnectDynamoDB(context.Background(), appconfig.DynamoConfig{
		Region:          "us-east-1",
		AccessKeyID:     "local",
		SecretAccessKey: "local",
		Endpoint:        "http://localhost:8000",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	opts := client.Options()
	if opts.BaseEndpoint == nil || *opts.BaseEndpoint != "http://localhost:8000" {
		t.Fatalf("expected endpoint override, got %v", opts.BaseEndpoint)
	}
}
