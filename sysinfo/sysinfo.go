// Package sysinfo decodes the versioned system information document
// captured alongside a trace: OS, CPUs, GPUs, display driver and, from
// schema version 2 on, the list of running processes.
//
// The document format evolves over time and is produced by collectors of
// varying age and health, so every field has a defined zero value and a
// missing or malformed optional section is never an error. Only an
// unparseable document or an unknown schema major version fails the
// decode as a whole.
package sysinfo

// Version identifies the revision of the system info document structure.
type Version struct {
	Major uint32 `json:"major"`
	Minor uint32 `json:"minor"`
	Patch uint32 `json:"patch"`
	Build uint32 `json:"build"`
}

// DevDriverInfo holds developer driver interface info.
type DevDriverInfo struct {
	MajorVersion uint32 `json:"majorVersion"`
	Tag          string `json:"tag"`
}

// OsMemoryInfo holds system memory totals.
type OsMemoryInfo struct {
	// Physical is the total physical memory size in bytes.
	Physical uint64 `json:"physical"`
	// Swap is the total swap size in bytes.
	Swap uint64 `json:"swap"`
	// Type is the memory type name.
	Type string `json:"type"`
}

// EtwSupportInfo describes Event Tracing for Windows availability.
type EtwSupportInfo struct {
	IsSupported              bool   `json:"isSupported"`
	HasPermission            bool   `json:"hasPermission"`
	StatusCode               uint32 `json:"statusCode"`
	NeedsRegistryOrUserGroup bool   `json:"needsRegistryOrUserGroup"`
}

// ConfigInfo holds platform specific OS configuration. The Linux and
// Windows branches are independent; a document may carry neither, either,
// or both.
type ConfigInfo struct {
	// PowerDpmWritable reports whether the power management file is
	// writable on Linux.
	PowerDpmWritable bool           `json:"powerDpmWritable"`
	DrmMajorVersion  uint32         `json:"drmMajorVersion"`
	DrmMinorVersion  uint32         `json:"drmMinorVersion"`
	EtwSupport       EtwSupportInfo `json:"etwSupport"`
}

// OsInfo holds operating system info.
type OsInfo struct {
	Name     string       `json:"name"`
	Desc     string       `json:"description"`
	Hostname string       `json:"hostname"`
	Memory   OsMemoryInfo `json:"memory"`
	Config   ConfigInfo   `json:"config"`
}

// CpuInfo describes one CPU package in the system.
type CpuInfo struct {
	Name             string `json:"name"`
	CpuID            string `json:"cpuId"`
	DeviceID         string `json:"deviceId"`
	Architecture     string `json:"architecture"`
	VendorID         string `json:"vendorId"`
	Virtualization   string `json:"virtualization"`
	NumPhysicalCores uint32 `json:"numPhysicalCores"`
	NumLogicalCores  uint32 `json:"numLogicalCores"`
	// MaxClockSpeed is the maximum clock speed in MHz.
	MaxClockSpeed uint32 `json:"maxClockSpeed"`
	// TimestampClockFrequency is the timestamp counter frequency in Hz.
	TimestampClockFrequency uint64 `json:"cpuTimeClockFreq"`
}

// PciInfo holds a GPU's PCI bus location.
type PciInfo struct {
	Bus      uint32 `json:"bus"`
	Device   uint32 `json:"device"`
	Function uint32 `json:"function"`
}

// ClockInfo holds a clock range in Hz.
type ClockInfo struct {
	Min uint64 `json:"min"`
	Max uint64 `json:"max"`
}

// IdInfo holds hardware identification for an adapter.
type IdInfo struct {
	GfxEngine uint32 `json:"gfxEngine"`
	Family    uint32 `json:"family"`
	ERev      uint32 `json:"eRev"`
	Revision  uint32 `json:"revision"`
	Device    uint32 `json:"device"`
	Subsystem uint32 `json:"subsystem"`
	Vendor    uint32 `json:"vendor"`
	// Luid is the locally unique identifier for the adapter, decoded
	// from its hex string representation.
	Luid [8]byte `json:"luid"`
}

// AsicInfo holds physical hardware identification for a GPU.
type AsicInfo struct {
	GpuIndex       uint32    `json:"gpuIndex"`
	GpuCounterFreq uint64    `json:"gpuCounterFreq"`
	EngineClockHz  ClockInfo `json:"engineClockHz"`

	NumShaderEngines         uint32 `json:"numShaderEngines"`
	NumShaderArraysPerEngine uint32 `json:"numShaderArraysPerEngine"`

	// CuMask describes the active compute units, indexed by shader
	// engine first and then by shader array within the engine.
	CuMask [][]uint32 `json:"cuMask"`
	NumCus uint32     `json:"numCus"`

	IDs IdInfo `json:"ids"`
}

// HeapInfo describes one GPU memory heap. HeapType comes from the key the
// heap was stored under in the document, typically "local" or "invisible".
type HeapInfo struct {
	HeapType string `json:"heapType"`
	PhysAddr uint64 `json:"physicalAddress"`
	Size     uint64 `json:"size"`
}

// ExcludedRangeInfo describes a virtual address range excluded from use.
type ExcludedRangeInfo struct {
	Base uint64 `json:"base"`
	Size uint64 `json:"size"`
}

// MemoryInfo holds memory info and statistics for a GPU.
type MemoryInfo struct {
	Type           string `json:"type"`
	MemOpsPerClock uint32 `json:"memOpsPerClock"`
	BusBitWidth    uint32 `json:"busBitWidth"`
	// Bandwidth is the computed bus bandwidth in bytes per second.
	Bandwidth        uint64              `json:"bandwidthBytesPerSec"`
	MemClockHz       ClockInfo           `json:"memClockHz"`
	Heaps            []HeapInfo          `json:"heaps"`
	ExcludedVaRanges []ExcludedRangeInfo `json:"excludedVaRanges"`
}

// SoftwareVersion holds a major/minor/misc version triple.
type SoftwareVersion struct {
	Major uint32 `json:"major"`
	Minor uint32 `json:"minor"`
	Misc  uint32 `json:"misc"`
}

// GpuInfo identifies one GPU device connected to the system.
type GpuInfo struct {
	Name   string          `json:"name"`
	Pci    PciInfo         `json:"pci"`
	Asic   AsicInfo        `json:"asic"`
	Memory MemoryInfo      `json:"memory"`
	BigSw  SoftwareVersion `json:"bigSw"`
}

// Process describes a running process captured with the system info.
type Process struct {
	Name string `json:"name"`
	Path string `json:"path"`
	ID   uint32 `json:"processId"`
}

// DriverInfo holds display driver software info.
type DriverInfo struct {
	// PackagingVersionMajor and PackagingVersionMinor are derived from
	// PackagingVersion; they stay zero when the string does not split.
	PackagingVersionMajor uint32 `json:"packagingVersionMajor"`
	PackagingVersionMinor uint32 `json:"packagingVersionMinor"`
	Name                  string `json:"name"`
	Description           string `json:"description"`
	PackagingVersion      string `json:"packagingVersion"`
	// SoftwareVersion is Windows specific.
	SoftwareVersion string `json:"softwareVersion"`
	// IsClosedSource reports a PRO (closed source) driver.
	IsClosedSource bool `json:"isClosedSource"`
}

// SystemInfo is the decoded system information record. The zero value is
// the defined default for every field; a failed decode returns it as is.
type SystemInfo struct {
	Version   Version       `json:"version"`
	Driver    DriverInfo    `json:"driver"`
	DevDriver DevDriverInfo `json:"devdriver"`
	Os        OsInfo        `json:"os"`
	Cpus      []CpuInfo     `json:"cpus"`
	Gpus      []GpuInfo     `json:"gpus"`
	// Processes is only populated by schema version 2 and later.
	Processes []Process `json:"processes"`
}
