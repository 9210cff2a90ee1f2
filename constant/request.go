package constant

type RequestStatus string

const (
	RequestStatusPending    RequestStatus = "pending"
	RequestStatusAccepted   RequestStatus = "accepted"
	RequestStatusRejected   RequestStatus = "rejected"
	RequestStatusInProgress RequestStatus = "in_progress"
	RequestStatusCompleted  RequestStatus = "completed"
	RequestStatusCancelled  RequestStatus = "cancelled"
)

// IsTerminal reports whether no further transition is permitted from s.
func (s RequestStatus) IsTerminal() bool {
	switch s {
	case RequestStatusCompleted, RequestStatusRejected, RequestStatusCancelled:
		return true
	default:
		return false
	}
}

func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusPending, RequestStatusAccepted, RequestStatusRejected,
		RequestStatusInProgress, RequestStatusCompleted, RequestStatusCancelled:
		return true
	default:
		return false
	}
}

type ServiceType string

const (
	ServiceTypeFlatTire      ServiceType = "flat_tire"
	ServiceTypeBatteryJump   ServiceType = "battery_jump"
	ServiceTypeFuelDelivery  ServiceType = "fuel_delivery"
	ServiceTypeTowing        ServiceType = "towing"
	ServiceTypeLockout       ServiceType = "lockout"
	ServiceTypeEngineTrouble ServiceType = "engine_trouble"
	ServiceTypeAccident      ServiceType = "accident"
	ServiceTypeOther         ServiceType = "other"
)

type VehicleType string

const (
	VehicleTypeCar        VehicleType = "car"
	VehicleTypeMotorcycle VehicleType = "motorcycle"
	VehicleTypeTruck      VehicleType = "truck"
	VehicleTypeVan        VehicleType = "van"
	VehicleTypeBus        VehicleType = "bus"
	VehicleTypeOther      VehicleType = "other"
)

type CancelledBy string

const (
	CancelledByClient   CancelledBy = "client"
	CancelledByMechanic CancelledBy = "mechanic"
	CancelledByAdmin    CancelledBy = "admin"
)

const (
	DefaultRejectNote   = "Rejected by mechanic"
	DefaultCancelReason = "Cancelled by client"
)
