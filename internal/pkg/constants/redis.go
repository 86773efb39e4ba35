package constants

// Redis key formats
const (
	// Ride flow state (per user)
	KeyRidePickup      = "ride:pickup:%s"      // Format: ride:pickup:{user_id}
	KeyRideDestination = "ride:destination:%s" // Format: ride:destination:{user_id}
	KeyRideProviders   = "ride:providers:%s"   // Format: ride:providers:{user_id}
	KeyRideTransaction = "ride:txn:%s"         // Format: ride:txn:{user_id}
	KeyActiveRide      = "ride:active:%s"      // Format: ride:active:{user_id}

	// Mission Service
	KeyUserMissions = "missions:user:%s" // Hash: missions:user:{user_id}, field {mission_id}
)
