package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTransitionsCollectFieldsProgressively(t *testing.T) {
	start := time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)

	s := Idle(42).WaitingForDuration().
		WaitingForTask(45).
		WaitingForRole("написать драйвер").
		WaitingForProductType("профессионал").
		WaitingForUsageContext("код").
		WaitingForContext("в проде").
		WaitingForResources("надо для релиза").
		WaitingForConstraints("ноутбук, два часа").
		Working("без интернета", start)

	assert.Equal(t, int64(42), s.ChatID)
	assert.Equal(t, StatusWorking, s.Status)
	assert.Equal(t, 45, s.Duration)
	assert.Equal(t, "написать драйвер", s.Task)
	assert.Equal(t, "профессионал", s.Role)
	assert.Equal(t, "код", s.ProductType)
	assert.Equal(t, "в проде", s.UsageContext)
	assert.Equal(t, "надо для релиза", s.WorkContext)
	assert.Equal(t, "ноутбук, два часа", s.Resources)
	assert.Equal(t, "без интернета", s.Constraints)
	assert.Equal(t, start, *s.StartTime)
}

func TestWaitingForDurationDiscardsCollectedData(t *testing.T) {
	s := Idle(1).WaitingForDuration().WaitingForTask(30).WaitingForRole("задача")

	fresh := s.WaitingForDuration()

	assert.Equal(t, Session{ChatID: 1, Status: StatusWaitingForDuration}, fresh)
}

func TestTimerHandleLifecycle(t *testing.T) {
	start := time.Now()
	working := Idle(7).WaitingForDuration().WaitingForTask(30).
		WaitingForRole("t").WaitingForProductType("r").WaitingForUsageContext("p").
		WaitingForContext("u").WaitingForResources("w").WaitingForConstraints("res").
		Working("c", start).WithTimerHandle("timer-1")

	assert.Equal(t, "timer-1", working.TimerHandle)

	// The fired timer is consumed.
	assert.Empty(t, working.WaitingForExtension().TimerHandle)

	// Stop cancels the timer; the entity never carries it into reflection.
	assert.Empty(t, working.WaitingForEnergy().TimerHandle)

	// An extension replaces the handle; the start time is untouched.
	extended := working.WaitingForExtension().WorkingExtended().WithTimerHandle("timer-2")
	assert.Equal(t, "timer-2", extended.TimerHandle)
	assert.Equal(t, start, *extended.StartTime)
}

func TestCompletedKeepsEverythingAndAddsNextStep(t *testing.T) {
	start := time.Now()
	s := Idle(9).WaitingForDuration().WaitingForTask(30).
		WaitingForRole("задача").WaitingForProductType("роль").
		WaitingForUsageContext("продукт").WaitingForContext("применение").
		WaitingForResources("контекст").WaitingForConstraints("ресурсы").
		Working("ограничения", start).
		WaitingForExtension().WaitingForEnergy().
		WaitingForFocus("4").WaitingForQuality("2").
		WaitingForSummary("3").WaitingForNextStep("итог")

	done := s.Completed("следующий шаг")

	assert.Equal(t, StatusIdle, done.Status)
	assert.Equal(t, "следующий шаг", done.NextStep)
	assert.Equal(t, "итог", done.Summary)
	assert.Equal(t, "4", done.EnergyLevel)
	assert.Equal(t, "2", done.FocusLevel)
	assert.Equal(t, "3", done.QualityLevel)
	assert.Equal(t, "задача", done.Task)
}
