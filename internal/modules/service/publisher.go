package service

import "context"

// EventPublisher abstracts the message-queue publisher so services can run
// without a broker (nil publisher) and tests can mock it. Satisfied by
// *mq.Publisher.
type EventPublisher interface {
	PublishJSON(ctx context.Context, exchangeName string, routingKey string, body any) error
}
