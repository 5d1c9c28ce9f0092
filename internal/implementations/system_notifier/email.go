package systemnotifier

import (
	"context"
	"errors"
	"fmt"
	"healthmate/internal/core/domain/channel"
	c "healthmate/internal/core/domain/common"
	e "healthmate/internal/core/domain/errors"
	"healthmate/internal/core/domain/notification"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type SESClient interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type Email struct {
	ses SESClient
	// This address must be verified with Amazon SES.
	sender string
}

func NewEmail(client SESClient, sender string) *Email {
	if client == nil {
		panic(e.NewNilArgumentError("client"))
	}
	if sender == "" {
		panic(e.NewEmptyArgumentError("sender"))
	}
	return &Email{ses: client, sender: sender}
}

func NewEmailFromConfig(awsConfig aws.Config, sender string) *Email {
	return NewEmail(ses.NewFromConfig(awsConfig), sender)
}

func (s *Email) Send(ctx context.Context, to c.Email, n notification.Notification) error {
	_, err := s.ses.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(s.sender),
		Destination: &types.Destination{
			CcAddresses: []string{},
			ToAddresses: []string{string(to)},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(n.Title), Charset: aws.String("UTF-8")},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(n.Body), Charset: aws.String("UTF-8")},
			},
		},
	})
	var rejected *types.MessageRejected
	if errors.As(err, &rejected) {
		return fmt.Errorf("%w: %s", channel.ErrDeliveryRefused, rejected.ErrorMessage())
	}
	return err
}
