package services

// EventPublisher publishes record lifecycle events to the message bus.
// Publishing is best-effort: services log failures and carry on, so a broken
// or absent broker never affects record management.
type EventPublisher interface {
	PublishRecordEvent(event, entity, id string) error
}
