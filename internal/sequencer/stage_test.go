package sequencer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageForCount_Order(t *testing.T) {
	expected := []Stage{StageName, StageEmail, StageExperience, StageSkills, StageProject, StageAvailability}
	for i, want := range expected {
		assert.Equal(t, want, StageForCount(i), "stage at count %d", i)
	}
}

func TestStageForCount_TerminalAtSixAndBeyond(t *testing.T) {
	for _, n := range []int{6, 7, 10, 100} {
		assert.Equal(t, StageTerminal, StageForCount(n), "count %d", n)
	}
}

func TestStageForCount_NegativeCountIsTerminal(t *testing.T) {
	// Defined for all inputs; negative counts cannot occur but must not panic.
	assert.Equal(t, StageTerminal, StageForCount(-1))
}

func TestStageGuidance_NonEmptyForAllStages(t *testing.T) {
	for n := 0; n <= TotalSteps; n++ {
		assert.NotEmpty(t, StageForCount(n).Guidance())
	}
}
