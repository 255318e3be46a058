package dto

// DashboardResponse backs the admin landing view with headline counts.
type DashboardResponse struct {
	TotalDoctors      int64 `json:"total_doctors"`
	TotalPatients     int64 `json:"total_patients"`
	TotalAppointments int64 `json:"total_appointments"`
}
