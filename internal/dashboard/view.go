package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// gaugeWidth is the width of the usage bars inside section content lines.
const gaugeWidth = 20

// noData is the placeholder shown for a family whose snapshot section is absent.
const noData = "no data"

// renderWaiting renders the splash shown before the first snapshot arrives.
func (m Model) renderWaiting() string {
	return HeaderStyle.Render(TitleStyle.Render("litemon")) + "\n\n" +
		MutedStyle.Render("  collecting first sample...")
}

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	width := m.width
	if width == 0 {
		width = 80
	}

	sections := []string{
		m.renderHeader(),
		m.renderCPU(width),
		m.renderMemory(width),
		m.renderDisks(width),
		m.renderNetwork(width),
	}
	if gpu := m.renderGPU(width); gpu != "" {
		sections = append(sections, gpu)
	}
	sections = append(sections, m.renderFooter())

	return strings.Join(sections, "\n")
}

// renderHeader renders the title bar with host identity and uptime.
func (m Model) renderHeader() string {
	title := TitleStyle.Render("litemon")

	info := m.snapshot.System
	var stats string
	if info != nil {
		stats = LabelStyle.Render(fmt.Sprintf(" | %s | %s | up %s",
			info.Hostname, info.OS, formatUptime(info.Uptime)))
	} else {
		stats = MutedStyle.Render(" | " + noData)
	}

	return HeaderStyle.Render(title + stats)
}

// renderCPU renders the overall gauge plus the scrollable per-core list.
func (m Model) renderCPU(width int) string {
	cpu := m.snapshot.CPU
	if cpu == nil {
		return renderEmptySection("CPU", width)
	}

	var lines []string
	lines = append(lines, SectionHeader("CPU", fmt.Sprintf("%.1f%%", cpu.Percent), width))

	model := cpu.Model
	if model == "" {
		model = "unknown"
	}
	overall := Gauge(gaugeWidth, cpu.Percent) +
		MetricStyle(cpu.Percent).Render(fmt.Sprintf(" %5.1f%%", cpu.Percent)) +
		LabelStyle.Render(fmt.Sprintf("  %s  %s", formatFrequency(cpu.FrequencyMHz), model))
	lines = append(lines, SectionContentLine(overall, width))

	window := m.coreWindow()
	start := m.scroll.Offset
	if start > len(cpu.Cores) {
		start = len(cpu.Cores)
	}
	end := start + window
	if end > len(cpu.Cores) {
		end = len(cpu.Cores)
	}

	for i := start; i < end; i++ {
		core := cpu.Cores[i]
		row := LabelStyle.Render(fmt.Sprintf("%3d ", i)) +
			Gauge(gaugeWidth, core.Percent) +
			MetricStyle(core.Percent).Render(fmt.Sprintf(" %5.1f%%", core.Percent)) +
			LabelStyle.Render("  "+formatFrequency(core.FrequencyMHz))
		lines = append(lines, SectionContentLine(row, width))
	}

	if len(cpu.Cores) > window {
		indicator := MutedStyle.Render(fmt.Sprintf("cores %d-%d of %d", start, end-1, len(cpu.Cores)))
		lines = append(lines, SectionContentLine(indicator, width))
	}

	lines = append(lines, SectionFooter(width))
	return strings.Join(lines, "\n")
}

// renderMemory renders physical and swap memory gauges.
func (m Model) renderMemory(width int) string {
	mem := m.snapshot.Memory
	if mem == nil {
		return renderEmptySection("Memory", width)
	}

	var lines []string
	lines = append(lines, SectionHeader("Memory", fmt.Sprintf("%.1f%%", mem.UsedPercent()), width))

	ram := Gauge(gaugeWidth, mem.UsedPercent()) +
		MetricStyle(mem.UsedPercent()).Render(fmt.Sprintf(" %5.1f%%", mem.UsedPercent())) +
		LabelStyle.Render(fmt.Sprintf("  %s / %s", humanize.IBytes(mem.UsedBytes), humanize.IBytes(mem.TotalBytes)))
	lines = append(lines, SectionContentLine(ram, width))

	if mem.SwapTotalBytes > 0 {
		swap := Gauge(gaugeWidth, mem.SwapPercent()) +
			MetricStyle(mem.SwapPercent()).Render(fmt.Sprintf(" %5.1f%%", mem.SwapPercent())) +
			LabelStyle.Render(fmt.Sprintf("  swap %s / %s", humanize.IBytes(mem.SwapUsedBytes), humanize.IBytes(mem.SwapTotalBytes)))
		lines = append(lines, SectionContentLine(swap, width))
	} else {
		lines = append(lines, SectionContentLine(MutedStyle.Render("swap not configured"), width))
	}

	lines = append(lines, SectionFooter(width))
	return strings.Join(lines, "\n")
}

// renderDisks renders one row per mounted filesystem.
func (m Model) renderDisks(width int) string {
	disks := m.snapshot.Disks
	if disks == nil {
		return renderEmptySection("Disks", width)
	}

	var lines []string
	lines = append(lines, SectionHeader("Disks", fmt.Sprintf("%d mounted", len(disks)), width))

	if len(disks) == 0 {
		lines = append(lines, SectionContentLine(MutedStyle.Render("no mounted filesystems"), width))
	}

	for _, d := range disks {
		row := ValueStyle.Render(padRight(d.Mount, 16)) +
			Gauge(gaugeWidth, d.UsedPercent()) +
			MetricStyle(d.UsedPercent()).Render(fmt.Sprintf(" %5.1f%%", d.UsedPercent())) +
			LabelStyle.Render(fmt.Sprintf("  %s / %s  %s",
				humanize.IBytes(d.UsedBytes), humanize.IBytes(d.TotalBytes), d.Fstype))
		if d.Removable {
			row += " " + RemovableTagStyle.Render("[removable]")
		}
		lines = append(lines, SectionContentLine(row, width))
	}

	lines = append(lines, SectionFooter(width))
	return strings.Join(lines, "\n")
}

// renderNetwork renders rx/tx rates with sparklines of recent history.
func (m Model) renderNetwork(width int) string {
	net := m.snapshot.Network
	if net == nil {
		return renderEmptySection("Network", width)
	}

	var lines []string
	lines = append(lines, SectionHeader("Network",
		fmt.Sprintf("↓ %s  ↑ %s", formatRate(net.RxRate), formatRate(net.TxRate)), width))

	rxHist, txHist := m.history.NetworkRates(DefaultHistorySize)
	sparkWidth := width - 30
	if sparkWidth < 10 {
		sparkWidth = 10
	}

	rx := LabelStyle.Render("↓ rx ") +
		ValueStyle.Render(padRight(formatRate(net.RxRate), 12)) +
		RenderSparkline(rxHist, sparkWidth, ColorGraph)
	lines = append(lines, SectionContentLine(rx, width))

	tx := LabelStyle.Render("↑ tx ") +
		ValueStyle.Render(padRight(formatRate(net.TxRate), 12)) +
		RenderSparkline(txHist, sparkWidth, ColorAccent)
	lines = append(lines, SectionContentLine(tx, width))

	totals := MutedStyle.Render(fmt.Sprintf("total ↓ %s  ↑ %s",
		humanize.IBytes(net.RxTotal), humanize.IBytes(net.TxTotal)))
	lines = append(lines, SectionContentLine(totals, width))

	lines = append(lines, SectionFooter(width))
	return strings.Join(lines, "\n")
}

// renderGPU renders the GPU section. The section disappears entirely when no
// GPU is supported; a supported GPU whose read failed this tick shows the
// placeholder instead.
func (m Model) renderGPU(width int) string {
	if !m.sampler.GPUSupported() {
		return ""
	}

	gpu := m.snapshot.GPU
	if gpu == nil {
		return renderEmptySection("GPU", width)
	}

	var lines []string
	lines = append(lines, SectionHeader("GPU", fmt.Sprintf("%.1f%%", gpu.Percent), width))

	util := Gauge(gaugeWidth, gpu.Percent) +
		MetricStyle(gpu.Percent).Render(fmt.Sprintf(" %5.1f%%", gpu.Percent)) +
		LabelStyle.Render("  "+gpu.Name)
	lines = append(lines, SectionContentLine(util, width))

	vram := Gauge(gaugeWidth, gpu.MemoryPercent()) +
		MetricStyle(gpu.MemoryPercent()).Render(fmt.Sprintf(" %5.1f%%", gpu.MemoryPercent())) +
		LabelStyle.Render(fmt.Sprintf("  vram %s / %s  %d°C",
			humanize.IBytes(gpu.MemoryUsed), humanize.IBytes(gpu.MemoryTotal), gpu.Temperature))
	lines = append(lines, SectionContentLine(vram, width))

	lines = append(lines, SectionFooter(width))
	return strings.Join(lines, "\n")
}

// renderFooter renders the keyboard help footer.
func (m Model) renderFooter() string {
	return FooterStyle.Render(m.help.View(m.keys))
}

// renderEmptySection renders a section whose family has no data this tick.
func renderEmptySection(title string, width int) string {
	return strings.Join([]string{
		SectionHeader(title, "", width),
		SectionContentLine(MutedStyle.Render(noData), width),
		SectionFooter(width),
	}, "\n")
}

// formatRate formats a bytes-per-second rate.
func formatRate(bytesPerSecond float64) string {
	if bytesPerSecond < 0 {
		bytesPerSecond = 0
	}
	return humanize.IBytes(uint64(bytesPerSecond)) + "/s"
}

// formatFrequency renders MHz values in the most readable unit.
func formatFrequency(mhz float64) string {
	if mhz <= 0 {
		return "-"
	}
	if mhz >= 1000 {
		return fmt.Sprintf("%.2fGHz", mhz/1000)
	}
	return fmt.Sprintf("%.0fMHz", mhz)
}

// formatUptime renders an uptime duration as days, hours, and minutes.
func formatUptime(d time.Duration) string {
	d = d.Round(time.Minute)
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}

// padRight pads s with spaces to at least width display columns.
func padRight(s string, width int) string {
	if pad := width - lipgloss.Width(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
