// Package shared contains common domain types, errors and events
// that are used across all domain packages.
package shared

import (
	"time"
)

// EventType represents the type of domain event.
type EventType string

// Domain event types.
const (
	// Student events
	EventStudentRegistered EventType = "student.registered"
	EventGradeAdded        EventType = "student.grade_added"
	EventGradeRejected     EventType = "student.grade_rejected"

	// Person events
	EventPersonRegistered EventType = "person.registered"
)

// Event is the base interface for all domain events.
type Event interface {
	// EventType returns the type of the event.
	EventType() EventType

	// OccurredAt returns when the event occurred.
	OccurredAt() time.Time

	// AggregateID returns the ID of the aggregate that produced this event.
	AggregateID() int

	// Payload returns the event data as a map for logging.
	Payload() map[string]interface{}
}

// BaseEvent provides common event functionality.
type BaseEvent struct {
	Type          EventType `json:"type"`
	Timestamp     time.Time `json:"timestamp"`
	AggregateId   int       `json:"aggregate_id"`
	Version       int       `json:"version"`
	CorrelationID string    `json:"correlation_id,omitempty"`
}

// EventType implements Event interface.
func (e BaseEvent) EventType() EventType {
	return e.Type
}

// OccurredAt implements Event interface.
func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// AggregateID implements Event interface.
func (e BaseEvent) AggregateID() int {
	return e.AggregateId
}

// NewBaseEvent creates a new base event.
func NewBaseEvent(eventType EventType, aggregateID int) BaseEvent {
	return BaseEvent{
		Type:        eventType,
		Timestamp:   time.Now().UTC(),
		AggregateId: aggregateID,
		Version:     1,
	}
}

// WithCorrelationID sets the correlation ID for tracing.
func (e BaseEvent) WithCorrelationID(id string) BaseEvent {
	e.CorrelationID = id
	return e
}

// ═══════════════════════════════════════════════════════════════════════════
// Student Events
// ═══════════════════════════════════════════════════════════════════════════

// StudentRegisteredEvent is emitted when a new student joins the roster.
type StudentRegisteredEvent struct {
	BaseEvent
	Name       string `json:"name"`
	Age        int    `json:"age"`
	GradeCount int    `json:"grade_count"`
}

// Payload implements Event interface.
func (e StudentRegisteredEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"name":        e.Name,
		"age":         e.Age,
		"grade_count": e.GradeCount,
	}
}

// NewStudentRegisteredEvent creates a new StudentRegisteredEvent.
func NewStudentRegisteredEvent(studentID int, name string, age, gradeCount int) StudentRegisteredEvent {
	return StudentRegisteredEvent{
		BaseEvent:  NewBaseEvent(EventStudentRegistered, studentID),
		Name:       name,
		Age:        age,
		GradeCount: gradeCount,
	}
}

// GradeAddedEvent is emitted when a grade is appended to a student.
type GradeAddedEvent struct {
	BaseEvent
	Grade      int `json:"grade"`
	GradeCount int `json:"grade_count"`
}

// Payload implements Event interface.
func (e GradeAddedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"grade":       e.Grade,
		"grade_count": e.GradeCount,
	}
}

// NewGradeAddedEvent creates a new GradeAddedEvent.
func NewGradeAddedEvent(studentID, grade, gradeCount int) GradeAddedEvent {
	return GradeAddedEvent{
		BaseEvent:  NewBaseEvent(EventGradeAdded, studentID),
		Grade:      grade,
		GradeCount: gradeCount,
	}
}

// GradeRejectedEvent is emitted when an out-of-range grade was dropped.
type GradeRejectedEvent struct {
	BaseEvent
	Grade int `json:"grade"`
}

// Payload implements Event interface.
func (e GradeRejectedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"grade": e.Grade,
	}
}

// NewGradeRejectedEvent creates a new GradeRejectedEvent.
func NewGradeRejectedEvent(studentID, grade int) GradeRejectedEvent {
	return GradeRejectedEvent{
		BaseEvent: NewBaseEvent(EventGradeRejected, studentID),
		Grade:     grade,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Person Events
// ═══════════════════════════════════════════════════════════════════════════

// PersonRegisteredEvent is emitted when a person is added to the roster.
type PersonRegisteredEvent struct {
	BaseEvent
	Name   string `json:"name"`
	Gender string `json:"gender"`
}

// Payload implements Event interface.
func (e PersonRegisteredEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"name":   e.Name,
		"gender": e.Gender,
	}
}

// NewPersonRegisteredEvent creates a new PersonRegisteredEvent.
func NewPersonRegisteredEvent(personID int, name, gender string) PersonRegisteredEvent {
	return PersonRegisteredEvent{
		BaseEvent: NewBaseEvent(EventPersonRegistered, personID),
		Name:      name,
		Gender:    gender,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Bus contracts
// ═══════════════════════════════════════════════════════════════════════════

// EventHandler is a function that handles an event.
type EventHandler func(event Event) error

// EventPublisher defines the interface for publishing events.
type EventPublisher interface {
	// Publish sends an event to subscribers.
	Publish(event Event) error
}

// EventSubscriber defines the interface for subscribing to events.
type EventSubscriber interface {
	// Subscribe registers a handler for an event type.
	Subscribe(eventType EventType, handler EventHandler) error

	// SubscribeAll registers a handler for all events.
	SubscribeAll(handler EventHandler) error
}

// EventBus combines publishing and subscribing.
type EventBus interface {
	EventPublisher
	EventSubscriber
}

// NopPublisher discards every event. Used where no bus is wired.
type NopPublisher struct{}

// Publish implements EventPublisher.
func (NopPublisher) Publish(Event) error { return nil }
