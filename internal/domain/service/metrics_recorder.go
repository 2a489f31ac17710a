package service

// MetricsRecorder receives business counters from the use case layer.
type MetricsRecorder interface {
	ShipmentCreated(priority string)
	ShipmentTransitioned(from, to string)
	EventPublished(eventType string, err error)
}

// NopMetricsRecorder discards every observation.
type NopMetricsRecorder struct{}

func (NopMetricsRecorder) ShipmentCreated(string)              {}
func (NopMetricsRecorder) ShipmentTransitioned(string, string) {}
func (NopMetricsRecorder) EventPublished(string, error)        {}
