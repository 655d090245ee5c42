package notification

import (
	"context"

	"dispatch/internal/domain/service"
	"dispatch/internal/errors"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// firebaseSender delivers push notifications to FCM topics. Client apps subscribe to the
// topics of the customer, agent or restaurant they represent.
type firebaseSender struct {
	client *messaging.Client
}

// NewFirebaseSender creates a push sender from a service account credentials file.
func NewFirebaseSender(ctx context.Context, projectID, credentialsPath string) (Sender, error) {
	var conf *firebase.Config
	if projectID != "" {
		conf = &firebase.Config{ProjectID: projectID}
	}

	app, err := firebase.NewApp(ctx, conf, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return &firebaseSender{client: client}, nil
}

func (s *firebaseSender) Send(ctx context.Context, n *service.Notification) error {
	message := &messaging.Message{
		Topic: n.Target,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
		Data: n.Data,
	}

	if _, err := s.client.Send(ctx, message); err != nil {
		return errors.Wrapf(err, "failed to send push to topic %s", n.Target)
	}

	return nil
}
