package pipeline

// State identifies the stage a request is currently in. States advance
// strictly forward; a request never revisits a stage.
type State int

const (
	// StateDetecting identifies the query language.
	StateDetecting State = iota + 1
	// StateTranslatingIn brings the query into the working language.
	StateTranslatingIn
	// StateRetrieving gathers knowledge context and weather.
	StateRetrieving
	// StateGenerating produces the English answer.
	StateGenerating
	// StateTranslatingOut brings the answer back to the query language.
	StateTranslatingOut
	// StateSynthesizingAudio produces spoken renditions of the answer.
	StateSynthesizingAudio
	// StateDone means the response is complete.
	StateDone
)

var stateNames = map[State]string{
	StateDetecting:         "detecting",
	StateTranslatingIn:     "translating-in",
	StateRetrieving:        "retrieving",
	StateGenerating:        "generating",
	StateTranslatingOut:    "translating-out",
	StateSynthesizingAudio: "synthesizing-audio",
	StateDone:              "done",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
