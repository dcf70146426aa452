package turing

// MaxSteps bounds every simulation. A machine still running after this
// many applied transitions is reported as out of steps and rejected.
const MaxSteps = 1000

// HaltCause says why a run stopped.
type HaltCause int

const (
	HaltAccept HaltCause = iota
	HaltReject
	HaltNoTransition
	HaltOutOfSteps
)

func (c HaltCause) String() string {
	switch c {
	case HaltAccept:
		return "accept state reached"
	case HaltReject:
		return "reject state reached"
	case HaltNoTransition:
		return "no transition found"
	case HaltOutOfSteps:
		return "step budget exhausted"
	}
	return "unknown"
}

// Result is the outcome of one run. Steps counts applied transitions.
type Result struct {
	Accepted   bool
	Cause      HaltCause
	Steps      int
	FinalState string
}

// StepObserver sees each applied transition: the 1-based step number,
// the rule, and the tape and head position after applying it. The tape
// slice is a copy the observer may keep.
type StepObserver func(step int, t Transition, tape []rune, head int)

// Run reports whether the machine accepts input.
func (m *Machine) Run(input string) bool {
	return m.Execute(input, nil).Accepted
}

// Execute runs the machine on input. The tape starts holding the input,
// or a single blank when the input is empty, with the head on the first
// cell. Each iteration checks acceptance, then explicit rejection, then
// extends the tape by one blank if the head ran off either end, then
// looks up a rule for the current symbol. No rule means rejection.
func (m *Machine) Execute(input string, obs StepObserver) Result {
	tape := []rune(input)
	if len(tape) == 0 {
		tape = []rune{m.Blank}
	}
	state := m.Start
	head := 0
	for steps := 0; steps < MaxSteps; steps++ {
		if _, ok := m.AcceptStates[state]; ok {
			return Result{Accepted: true, Cause: HaltAccept, Steps: steps, FinalState: state}
		}
		if state == m.RejectState {
			return Result{Cause: HaltReject, Steps: steps, FinalState: state}
		}
		if head < 0 {
			tape = append([]rune{m.Blank}, tape...)
			head = 0
		}
		if head >= len(tape) {
			tape = append(tape, m.Blank)
		}
		t, ok := m.findTransition(state, tape[head])
		if !ok {
			return Result{Cause: HaltNoTransition, Steps: steps, FinalState: state}
		}
		tape[head] = t.Write
		state = t.To
		if t.Move == Left {
			head--
		} else {
			head++
		}
		if obs != nil {
			snapshot := append([]rune(nil), tape...)
			obs(steps+1, t, snapshot, head)
		}
	}
	return Result{Cause: HaltOutOfSteps, Steps: MaxSteps, FinalState: state}
}
