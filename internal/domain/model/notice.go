package model

// Notice is a client notification produced after a committed change.
type Notice struct {
	Event         string
	Email         string
	Phone         string
	Substitutions map[string]string
}

// Notification events, also used as template keys.
const (
	EventOrderReady          = "order_ready"
	EventEstimateAdded       = "estimate_added"
	EventEstimateEdited      = "estimate_edited"
	EventComplaintProcessing = "complaint_processing"
	EventComplaintDecided    = "complaint_decided"
)
