package bot

// Step enumerates the TAG registration sub-statuses in the order the
// flow walks through them.
type Step int

const (
	StepStart Step = iota
	StepCPF
	StepConfirmCPF
	StepTagNumber
	StepPlate
	StepBrand
	StepModel
	StepColor
	StepConfirm
	StepTagPhoto
	StepVehiclePhoto
	StepFinalizing
)

var stepNames = map[Step]string{
	StepStart:        "tag0",
	StepCPF:          "tag1",
	StepConfirmCPF:   "tag2",
	StepTagNumber:    "tag3",
	StepPlate:        "tag4",
	StepBrand:        "tag5",
	StepModel:        "tag6",
	StepColor:        "tag7",
	StepConfirm:      "tag8",
	StepTagPhoto:     "tag9",
	StepVehiclePhoto: "tag10",
	StepFinalizing:   "finalizing",
}

// String returns the wire-compatible sub-status label, for logs and the
// diagnostic API.
func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

// Vehicle groups the vehicle fields collected during registration.
type Vehicle struct {
	Plate string `json:"plate"`
	Brand string `json:"brand"`
	Model string `json:"model"`
	Color string `json:"color"`
}

// TagDraft is the in-progress, not-yet-persisted registration for one
// chat identity. It exists only while a registration is running.
type TagDraft struct {
	Identity     string  `json:"identity"`
	CPF          string  `json:"cpf"`
	TagNumber    string  `json:"tagNumber"`
	Vehicle      Vehicle `json:"vehicle"`
	TagPhoto     []byte  `json:"-"`
	VehiclePhoto []byte  `json:"-"`
	Step         Step    `json:"step"`
	CreatedAt    int64   `json:"createdAt"` // epoch milliseconds
}
