package entity

// DoctorFilter is a domain-level filter for doctor searches.
// Used by repository layer to avoid coupling with delivery DTOs.
type DoctorFilter struct {
	Query          string // Matches name, email or phone (ILIKE)
	Specialization string // Filter by specialization (ILIKE)
	ExcludeBlocked bool   // Drop blacklisted doctors (patient-facing search)
}

// PatientFilter is a domain-level filter for patient searches.
type PatientFilter struct {
	Query string // Matches name, email or phone (ILIKE)
}
