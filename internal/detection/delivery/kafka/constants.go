package kafka

// DefaultTopicDetections receives one message per persisted detection.
const DefaultTopicDetections = "citron.spam.detections"

// EventTypeDetected tags detection messages.
const EventTypeDetected = "hostname.detected"
