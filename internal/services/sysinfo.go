package services

import (
	"fmt"
	"runtime"
	"sort"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
	"github.com/shirou/gopsutil/process"

	"github.com/evanluo/evos/internal/domain"
)

// SystemInfo produces one-shot host snapshots: memory, processes and a
// hardware summary. Each call is a fresh OS query, nothing is cached.
type SystemInfo struct{}

// NewSystemInfo creates the host snapshot collector.
func NewSystemInfo() *SystemInfo { return &SystemInfo{} }

// Memory returns current physical and swap memory usage.
func (s *SystemInfo) Memory() (domain.MemorySnapshot, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return domain.MemorySnapshot{}, fmt.Errorf("query virtual memory: %w", err)
	}
	snap := domain.MemorySnapshot{
		TotalBytes:     vm.Total,
		UsedBytes:      vm.Used,
		AvailableBytes: vm.Available,
		UsedPercent:    vm.UsedPercent,
	}
	if swap, err := mem.SwapMemory(); err == nil {
		snap.SwapTotalBytes = swap.Total
		snap.SwapUsedBytes = swap.Used
	}
	return snap, nil
}

// Processes lists every visible process sorted by PID. Processes that
// disappear mid-sweep are skipped.
func (s *SystemInfo) Processes() ([]domain.ProcessSnapshot, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, fmt.Errorf("enumerate processes: %w", err)
	}
	list := make([]domain.ProcessSnapshot, 0, len(procs))
	for _, p := range procs {
		name, err := p.Name()
		if err != nil {
			continue
		}
		snap := domain.ProcessSnapshot{PID: p.Pid, Name: name}
		if info, err := p.MemoryInfo(); err == nil && info != nil {
			snap.RSSBytes = info.RSS
			snap.VMSBytes = info.VMS
		}
		list = append(list, snap)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].PID < list[j].PID })
	return list, nil
}

// Process returns the snapshot for a single PID.
func (s *SystemInfo) Process(pid int32) (domain.ProcessSnapshot, error) {
	p, err := process.NewProcess(pid)
	if err != nil {
		return domain.ProcessSnapshot{}, fmt.Errorf("process %d: %w", pid, err)
	}
	name, err := p.Name()
	if err != nil {
		return domain.ProcessSnapshot{}, fmt.Errorf("process %d name: %w", pid, err)
	}
	snap := domain.ProcessSnapshot{PID: pid, Name: name}
	if info, err := p.MemoryInfo(); err == nil && info != nil {
		snap.RSSBytes = info.RSS
		snap.VMSBytes = info.VMS
	}
	return snap, nil
}

// Hardware returns a static summary of the host.
func (s *SystemInfo) Hardware() (domain.HardwareSnapshot, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return domain.HardwareSnapshot{}, fmt.Errorf("query virtual memory: %w", err)
	}
	snap := domain.HardwareSnapshot{
		Architecture:     runtime.GOARCH,
		LogicalCores:     runtime.NumCPU(),
		MemoryTotalBytes: vm.Total,
	}
	if infos, err := cpu.Info(); err == nil && len(infos) > 0 {
		snap.CPUModel = infos[0].ModelName
	}
	if hi, err := host.Info(); err == nil {
		snap.Hostname = hi.Hostname
		snap.OS = hi.OS
		snap.Platform = hi.Platform
	}
	return snap, nil
}
