package constants

// NATS Subjects
const (
	// Ride events
	SubjectRideBooked    = "ride.booked"
	SubjectRideCompleted = "ride.completed"
	SubjectRideCancelled = "ride.cancelled"

	// Loyalty events consumed by the missions service
	SubjectDealRedeemed = "deal.redeemed"
	SubjectQRScanned    = "qr.scanned"
)

// NATS queue groups
const (
	QueueGroupMissions = "missions-service"
)
