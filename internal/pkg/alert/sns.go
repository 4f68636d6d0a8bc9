package alert

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	snstypes "github.com/aws/aws-sdk-go-v2/service/sns/types"
	"github.com/rs/zerolog/log"
)

// Publisher sends operational alerts to an SNS topic
type Publisher interface {
	Publish(ctx context.Context, subject, message string, attributes map[string]string) error
}

// SNSConfig holds SNS connection settings
type SNSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	TopicARN        string
	Enabled         bool
}

// SNSPublisher implements Publisher backed by AWS SNS
type SNSPublisher struct {
	client   *sns.Client
	topicARN string
}

// NewSNS creates an SNS publisher. Returns a no-op publisher when
// alerting is disabled so callers never have to nil-check.
func NewSNS(ctx context.Context, cfg SNSConfig) (Publisher, error) {
	if !cfg.Enabled || cfg.TopicARN == "" {
		log.Warn().Msg("SNS alerts disabled")
		return &noopPublisher{}, nil
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	log.Info().Str("topic", cfg.TopicARN).Msg("SNS alerts enabled")

	return &SNSPublisher{
		client:   sns.NewFromConfig(awsCfg),
		topicARN: cfg.TopicARN,
	}, nil
}

// Publish sends a message with optional string attributes
func (p *SNSPublisher) Publish(ctx context.Context, subject, message string, attributes map[string]string) error {
	input := &sns.PublishInput{
		TopicArn: aws.String(p.topicARN),
		Subject:  aws.String(subject),
		Message:  aws.String(message),
	}

	if len(attributes) > 0 {
		input.MessageAttributes = make(map[string]snstypes.MessageAttributeValue, len(attributes))
		for k, v := range attributes {
			input.MessageAttributes[k] = snstypes.MessageAttributeValue{
				DataType:    aws.String("String"),
				StringValue: aws.String(v),
			}
		}
	}

	if _, err := p.client.Publish(ctx, input); err != nil {
		return fmt.Errorf("sns publish: %w", err)
	}
	return nil
}

type noopPublisher struct{}

func (*noopPublisher) Publish(context.Context, string, string, map[string]string) error {
	return nil
}
