package dashboard

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"litemon/internal/logger"
	"litemon/internal/metrics"
)

// stubSampler returns a canned snapshot without touching the OS.
type stubSampler struct {
	snap  *metrics.Snapshot
	gpu   bool
	ticks int
}

func (s *stubSampler) Tick(context.Context) *metrics.Snapshot {
	s.ticks++
	return s.snap
}

func (s *stubSampler) GPUSupported() bool { return s.gpu }

func testSnapshot() *metrics.Snapshot {
	return &metrics.Snapshot{
		Timestamp: time.Now(),
		CPU: &metrics.CPUInfo{
			Model:        "Test CPU",
			Percent:      42.5,
			FrequencyMHz: 3200,
			Cores: []metrics.CoreInfo{
				{Percent: 10, FrequencyMHz: 3200},
				{Percent: 95, FrequencyMHz: 3400},
			},
		},
		Memory:  &metrics.MemoryInfo{UsedBytes: 8 << 30, TotalBytes: 16 << 30},
		Disks:   []metrics.DiskInfo{{Mount: "/", Fstype: "ext4", UsedBytes: 40 << 30, TotalBytes: 100 << 30}},
		Network: &metrics.NetworkInfo{RxRate: 2048, TxRate: 1024, RxTotal: 5 << 30, TxTotal: 1 << 30},
		System:  &metrics.SystemInfo{Hostname: "testhost", OS: "linux 6.1", Uptime: 90 * time.Minute},
	}
}

func newTestModel(sampler Sampler) Model {
	return NewModel(sampler, time.Second, 100*time.Millisecond, logger.Noop())
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestModel_Init(t *testing.T) {
	m := newTestModel(&stubSampler{snap: testSnapshot()})
	cmd := m.Init()
	assert.NotNil(t, cmd)
}

func TestModel_QuitKey(t *testing.T) {
	m := newTestModel(&stubSampler{snap: testSnapshot()})

	updated, cmd := m.Update(keyPress('q'))
	m = updated.(Model)

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View(), "quitting model renders nothing")
}

func TestModel_QuitIsIdempotent(t *testing.T) {
	m := newTestModel(&stubSampler{snap: testSnapshot()})

	updated, _ := m.Update(keyPress('q'))
	m = updated.(Model)

	// A second quit while shutting down changes nothing
	updated, cmd := m.Update(keyPress('q'))
	m = updated.(Model)
	assert.Nil(t, cmd)
	assert.Empty(t, m.View())

	updated, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m = updated.(Model)
	assert.Nil(t, cmd)
	assert.Empty(t, m.View())
}

func TestModel_SnapshotReplacesPrevious(t *testing.T) {
	m := newTestModel(&stubSampler{snap: testSnapshot()})

	first := testSnapshot()
	updated, _ := m.Update(snapshotMsg(first))
	m = updated.(Model)
	assert.Same(t, first, m.snapshot)

	second := testSnapshot()
	second.CPU.Percent = 99
	updated, _ = m.Update(snapshotMsg(second))
	m = updated.(Model)
	assert.Same(t, second, m.snapshot)
}

func TestModel_SampleTickSchedulesSample(t *testing.T) {
	sampler := &stubSampler{snap: testSnapshot()}
	m := newTestModel(sampler)

	_, cmd := m.Update(sampleTickMsg(time.Now()))
	require.NotNil(t, cmd)
}

func TestModel_SampleTickStopsWhenQuitting(t *testing.T) {
	m := newTestModel(&stubSampler{snap: testSnapshot()})

	updated, _ := m.Update(keyPress('q'))
	m = updated.(Model)

	_, cmd := m.Update(sampleTickMsg(time.Now()))
	assert.Nil(t, cmd)

	_, cmd = m.Update(renderTickMsg(time.Now()))
	assert.Nil(t, cmd)
}

func TestModel_LateSnapshotDroppedAfterQuit(t *testing.T) {
	m := newTestModel(&stubSampler{snap: testSnapshot()})

	updated, _ := m.Update(keyPress('q'))
	m = updated.(Model)

	updated, cmd := m.Update(snapshotMsg(testSnapshot()))
	m = updated.(Model)
	assert.Nil(t, cmd)
	assert.Nil(t, m.snapshot)
}

func TestModel_SampleCmdDeliversSnapshot(t *testing.T) {
	sampler := &stubSampler{snap: testSnapshot()}
	m := newTestModel(sampler)

	msg := m.sampleCmd()()
	snap, ok := msg.(snapshotMsg)
	require.True(t, ok)
	assert.Same(t, sampler.snap, (*metrics.Snapshot)(snap))
	assert.Equal(t, 1, sampler.ticks)
}

func TestModel_ScrollClampsToCoreCount(t *testing.T) {
	snap := testSnapshot()
	snap.CPU.Cores = make([]metrics.CoreInfo, 32)
	m := newTestModel(&stubSampler{snap: snap})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(Model)
	updated, _ = m.Update(snapshotMsg(snap))
	m = updated.(Model)

	require.Positive(t, m.scroll.Max)

	// Scroll far past the end; offset pins at Max
	for i := 0; i < 100; i++ {
		updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = updated.(Model)
	}
	assert.Equal(t, m.scroll.Max, m.scroll.Offset)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyHome})
	m = updated.(Model)
	assert.Zero(t, m.scroll.Offset)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	m = updated.(Model)
	assert.Equal(t, m.scroll.Max, m.scroll.Offset)
}

func TestModel_ScrollMaxShrinksWithCoreCount(t *testing.T) {
	big := testSnapshot()
	big.CPU.Cores = make([]metrics.CoreInfo, 64)
	m := newTestModel(&stubSampler{snap: big})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(Model)
	updated, _ = m.Update(snapshotMsg(big))
	m = updated.(Model)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	m = updated.(Model)
	before := m.scroll.Offset
	require.Positive(t, before)

	// Fewer cores in the next snapshot pulls the window back into range
	small := testSnapshot()
	updated, _ = m.Update(snapshotMsg(small))
	m = updated.(Model)
	assert.LessOrEqual(t, m.scroll.Offset, m.scroll.Max)
	assert.Less(t, m.scroll.Offset, before)
}

func TestModel_ViewBeforeFirstSnapshot(t *testing.T) {
	m := newTestModel(&stubSampler{})
	assert.Contains(t, m.View(), "collecting first sample")
}

func TestModel_HelpToggle(t *testing.T) {
	m := newTestModel(&stubSampler{snap: testSnapshot()})

	assert.False(t, m.help.ShowAll)
	updated, _ := m.Update(keyPress('?'))
	m = updated.(Model)
	assert.True(t, m.help.ShowAll)

	updated, _ = m.Update(keyPress('?'))
	m = updated.(Model)
	assert.False(t, m.help.ShowAll)
}

func TestModel_CoreWindowBounds(t *testing.T) {
	m := newTestModel(&stubSampler{})

	// No size information yet: a sensible default
	assert.Equal(t, 8, m.coreWindow())

	m.height = 10
	assert.Equal(t, 4, m.coreWindow())

	m.height = 200
	assert.Equal(t, 16, m.coreWindow())
}
