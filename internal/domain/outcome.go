package domain

type Stage string

const (
	StageConvert Stage = "convert"
	StageUpload  Stage = "upload"
	StageLoad    Stage = "load"
	StageCleanup Stage = "cleanup"
)

// Outcome is the result of handling one file, object or load job in a stage.
type Outcome struct {
	Stage        Stage  `db:"stage"         json:"stage"                   csv:"stage"`
	Subject      string `db:"subject"       json:"subject"                 csv:"subject"`
	Target       string `db:"target"        json:"target,omitempty"        csv:"target"`
	ErrorMessage string `db:"error_message" json:"error_message,omitempty" csv:"error_message"`
}

func NewOutcome(stage Stage, subject, target string, err error) Outcome {
	o := Outcome{
		Stage:   stage,
		Subject: subject,
		Target:  target,
	}

	if err != nil {
		o.ErrorMessage = err.Error()
		if o.ErrorMessage == "" {
			o.ErrorMessage = "unknown error"
		}
	}

	return o
}

func (o Outcome) Failed() bool {
	return o.ErrorMessage != ""
}
