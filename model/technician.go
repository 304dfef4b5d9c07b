package model

// Technician status values. Closed set, validated by the store.
const (
	TechStatusActive   = "ativo"
	TechStatusInactive = "inativo"
	TechStatusVacation = "ferias"
	TechStatusOnField  = "em_campo"
)

// EmergencyContact is the nested contact record of a technician.
type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

// Technician represents one staff member. ActiveProcesses,
// CompletedProcesses and Efficiency are manually maintained counters, not
// derived from the process registry.
type Technician struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	Email              string           `json:"email"`
	Phone              string           `json:"phone"`
	RegistrationNumber string           `json:"registrationNumber"`
	Specialty          string           `json:"specialty"` // one of the process categories
	Status             string           `json:"status"`
	Location           string           `json:"location"`
	JoinDate           string           `json:"joinDate"`
	Avatar             string           `json:"avatar,omitempty"`
	ActiveProcesses    int              `json:"activeProcesses"`
	CompletedProcesses int              `json:"completedProcesses"`
	Efficiency         int              `json:"efficiency"`
	MonthlyGoal        int              `json:"monthlyGoal"`
	Experience         string           `json:"experience"`
	Certifications     []string         `json:"certifications"`
	Skills             []string         `json:"skills"`
	EmergencyContact   EmergencyContact `json:"emergencyContact"`
}
