package model

// OwnershipCounts holds the per-doctor aggregate counters returned by the
// analytics endpoint: patients owned by the doctor and records whose parent
// patient is owned by the doctor.
type OwnershipCounts struct {
	PatientsCount int `json:"patients_count"`
	RecordsCount  int `json:"records_count"`
}
