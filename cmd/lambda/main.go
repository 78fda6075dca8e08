package main

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/saulo-duarte/quizmo-api/internal/config"
	"github.com/saulo-duarte/quizmo-api/internal/container"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Logger.Fatalf("Failed to load config: %v", err)
	}

	c, err := container.New(context.Background(), cfg)
	if err != nil {
		config.Logger.Fatalf("Failed to start: %v", err)
	}

	adapter := httpadapter.NewV2(c.Handler())
	lambda.Start(adapter.ProxyWithContext)
}
