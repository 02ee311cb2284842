package docrequest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusTransitions(t *testing.T) {
	all := []Status{StatusPending, StatusOnProcess, StatusReady, StatusReleased, StatusDeclined}

	allowed := map[Status]map[Status]bool{
		StatusPending:   {StatusOnProcess: true, StatusDeclined: true},
		StatusOnProcess: {StatusReady: true},
		StatusReady:     {StatusReleased: true},
		StatusReleased:  {},
		StatusDeclined:  {},
	}

	for _, from := range all {
		for _, to := range all {
			got := from.CanTransition(to)
			assert.Equal(t, allowed[from][to], got, "%s -> %s", from, to)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusReleased.Terminal())
	assert.True(t, StatusDeclined.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusOnProcess.Terminal())
	assert.False(t, StatusReady.Terminal())
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusReady.Valid())
	assert.False(t, Status("archived").Valid())
	assert.False(t, Status("").Valid())
}

func TestValidMethod(t *testing.T) {
	assert.True(t, ValidMethod("cash"))
	assert.True(t, ValidMethod("gcash"))
	assert.True(t, ValidMethod("free"))
	assert.False(t, ValidMethod("check"))
	assert.False(t, ValidMethod(""))
	assert.False(t, ValidMethod("Cash"))
}
