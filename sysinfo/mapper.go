package sysinfo

import (
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/GPUOpen-Tools/system-info-utils/internal/jsonnode"
)

// mapFunc populates one schema generation's fields from the system node.
// Newer generations call the previous one first and then layer their own
// fields on top, so the chain only ever grows by appending.
type mapFunc func(node gjson.Result, info *SystemInfo)

// mapperFor selects the mapping function for a schema major version.
func mapperFor(major uint32) (mapFunc, bool) {
	switch major {
	case 1:
		return mapV1, true
	case 2:
		return mapV2, true
	}
	return nil, false
}

// mapV1 handles schema version 1: driver, devdriver, os, cpus and gpus.
// Every section is optional; an absent section leaves its record at the
// zero value.
func mapV1(node gjson.Result, info *SystemInfo) {
	if jsonnode.Has(node, keyDevDriver) {
		mapDevDriver(node.Get(keyDevDriver), &info.DevDriver)
	}
	if jsonnode.Has(node, keyDriver) {
		mapDriver(node.Get(keyDriver), &info.Driver)
	}
	if jsonnode.Has(node, keyOs) {
		mapOs(node.Get(keyOs), &info.Os)
	}
	if jsonnode.Has(node, keyCpus) {
		mapCpus(node.Get(keyCpus), &info.Cpus)
	}
	if jsonnode.Has(node, keyGpus) {
		mapGpus(node.Get(keyGpus), &info.Gpus)
	}
}

// mapV2 handles schema version 2: everything version 1 has, plus the
// running process list.
func mapV2(node gjson.Result, info *SystemInfo) {
	mapV1(node, info)

	if jsonnode.Has(node, keyProcesses) {
		mapProcesses(node.Get(keyProcesses), &info.Processes)
	}
}

func mapDevDriver(node gjson.Result, out *DevDriverInfo) {
	if jsonnode.Has(node, keyVersion) {
		out.MajorVersion = jsonnode.Scalar(node.Get(keyVersion), keyMajor, uint32(0))
	}
	out.Tag = jsonnode.Scalar(node, keyTag, "")
}

func mapDriver(node gjson.Result, out *DriverInfo) {
	out.Name = jsonnode.Scalar(node, keyName, "")
	out.Description = jsonnode.Scalar(node, keyDescription, "")
	out.SoftwareVersion = jsonnode.Scalar(node, keyDriverSoftwareVersion, "")
	out.PackagingVersion = jsonnode.Scalar(node, keyDriverPackagingVersion, "")
	out.IsClosedSource = jsonnode.Scalar(node, keyDriverIsClosedSource, false)

	out.PackagingVersionMajor, out.PackagingVersionMinor = splitPackagingVersion(out.PackagingVersion)
}

// splitPackagingVersion derives the major and minor numbers from a
// packaging version string such as "23.10.1". Parsing is best effort: no
// '.' or no digits after the first '.' leaves both numbers at zero.
func splitPackagingVersion(s string) (major, minor uint32) {
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return 0, 0
	}

	rest := s[dot+1:]
	n := 0
	for n < len(rest) && rest[n] >= '0' && rest[n] <= '9' {
		n++
	}
	if n == 0 {
		return 0, 0
	}

	return tolerantUint32(s[:dot]), tolerantUint32(rest[:n])
}

// tolerantUint32 converts a decimal string, yielding zero on any failure.
func tolerantUint32(s string) uint32 {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0
	}
	return uint32(v)
}

func mapOs(node gjson.Result, out *OsInfo) {
	out.Name = jsonnode.Scalar(node, keyName, "")
	out.Desc = jsonnode.Scalar(node, keyDescription, "")
	out.Hostname = jsonnode.Scalar(node, keyHostname, "")

	if jsonnode.Has(node, keyMemory) {
		mapOsMemory(node.Get(keyMemory), &out.Memory)
	}

	if !jsonnode.Has(node, keyConfig) {
		return
	}
	config := node.Get(keyConfig)

	// The linux and windows branches are independent: a document may
	// carry neither, either, or both, and both are mapped when present.
	if jsonnode.Has(config, keyLinux) {
		linux := config.Get(keyLinux)
		out.Config.PowerDpmWritable = jsonnode.Scalar(linux, keyPowerDpmWritable, false)

		if jsonnode.Has(linux, keyDrm) {
			drm := linux.Get(keyDrm)
			out.Config.DrmMajorVersion = jsonnode.Scalar(drm, keyMajor, uint32(0))
			out.Config.DrmMinorVersion = jsonnode.Scalar(drm, keyMinor, uint32(0))
		}
	}

	if jsonnode.Has(config, keyWindows) {
		windows := config.Get(keyWindows)
		if jsonnode.Has(windows, keyEtwSupport) {
			mapEtwSupport(windows.Get(keyEtwSupport), &out.Config.EtwSupport)
		}
	}
}

func mapOsMemory(node gjson.Result, out *OsMemoryInfo) {
	out.Physical = jsonnode.Scalar(node, keyMemoryPhysical, uint64(0))
	out.Swap = jsonnode.Scalar(node, keyMemorySwap, uint64(0))
	out.Type = jsonnode.Scalar(node, keyName, "")
}

func mapEtwSupport(node gjson.Result, out *EtwSupportInfo) {
	out.IsSupported = jsonnode.Scalar(node, keyEtwSupported, false)
	out.HasPermission = jsonnode.Scalar(node, keyEtwHasPermission, false)
	out.StatusCode = jsonnode.Scalar(node, keyEtwStatusCode, uint32(0))
	out.NeedsRegistryOrUserGroup = jsonnode.Scalar(node, keyEtwRegistryOrUserGroup, false)
}

// mapCpus maps one record per array element. Fields default per element;
// a malformed entry does not invalidate its siblings.
func mapCpus(node gjson.Result, out *[]CpuInfo) {
	node.ForEach(func(_, cpuNode gjson.Result) bool {
		cpu := CpuInfo{
			Name:             jsonnode.Scalar(cpuNode, keyName, ""),
			Architecture:     jsonnode.Scalar(cpuNode, keyArchitecture, ""),
			CpuID:            jsonnode.Scalar(cpuNode, keyCpuID, ""),
			DeviceID:         jsonnode.Scalar(cpuNode, keyCpuDeviceID, ""),
			VendorID:         jsonnode.Scalar(cpuNode, keyCpuVendorID, ""),
			Virtualization:   jsonnode.Scalar(cpuNode, keyCpuVirtualization, ""),
			NumLogicalCores:  jsonnode.Scalar(cpuNode, keyCpuLogicalCoreCount, uint32(0)),
			NumPhysicalCores: jsonnode.Scalar(cpuNode, keyCpuPhysicalCoreCount, uint32(0)),
		}

		if jsonnode.Has(cpuNode, keyCpuSpeed) {
			cpu.MaxClockSpeed = jsonnode.Scalar(cpuNode.Get(keyCpuSpeed), keyMax, uint32(0))
		}

		cpu.TimestampClockFrequency = jsonnode.Scalar(cpuNode, keyCpuTimeClockFreq, uint64(0))

		*out = append(*out, cpu)
		return true
	})
}

func mapGpus(node gjson.Result, out *[]GpuInfo) {
	node.ForEach(func(_, gpuNode gjson.Result) bool {
		gpu := GpuInfo{
			Name: jsonnode.Scalar(gpuNode, keyName, ""),
		}

		if jsonnode.Has(gpuNode, keyPci) {
			mapPci(gpuNode.Get(keyPci), &gpu.Pci)
		}
		if jsonnode.Has(gpuNode, keyAsic) {
			mapAsic(gpuNode.Get(keyAsic), &gpu.Asic)
		}
		if jsonnode.Has(gpuNode, keyMemory) {
			mapGpuMemory(gpuNode.Get(keyMemory), &gpu.Memory)
		}
		if jsonnode.Has(gpuNode, keyBigSw) {
			mapSoftwareVersion(gpuNode.Get(keyBigSw), &gpu.BigSw)
		}

		*out = append(*out, gpu)
		return true
	})
}

func mapPci(node gjson.Result, out *PciInfo) {
	out.Bus = jsonnode.Scalar(node, keyPciBus, uint32(0))
	out.Device = jsonnode.Scalar(node, keyDevice, uint32(0))
	out.Function = jsonnode.Scalar(node, keyPciFunction, uint32(0))
}

func mapAsic(node gjson.Result, out *AsicInfo) {
	// GPUs the system never enumerated carry the sentinel index.
	out.GpuIndex = jsonnode.Scalar(node, keyAsicGpuIndex, uint32(math.MaxUint32))
	out.GpuCounterFreq = jsonnode.Scalar(node, keyAsicGpuCounterFreq, uint64(0))

	out.NumShaderEngines = jsonnode.Scalar(node, keyAsicNumSe, uint32(0))
	out.NumShaderArraysPerEngine = jsonnode.Scalar(node, keyAsicNumSaPerSe, uint32(0))
	out.NumCus = jsonnode.Scalar(node, keyAsicNumCus, uint32(0))

	if jsonnode.Has(node, keyAsicCuMask) {
		out.CuMask = mapCuMask(node.Get(keyAsicCuMask))
	}
	if jsonnode.Has(node, keyAsicEngineClockHz) {
		mapClock(node.Get(keyAsicEngineClockHz), &out.EngineClockHz)
	}
	if jsonnode.Has(node, keyAsicIds) {
		mapAsicIds(node.Get(keyAsicIds), &out.IDs)
	}
}

// mapCuMask decodes the two dimensional compute unit mask, outer index
// shader engine, inner index shader array. A mask value that is not an
// array is skipped silently. Past that point validation is all or
// nothing: one malformed element discards the whole mask, including rows
// already accumulated.
func mapCuMask(node gjson.Result) [][]uint32 {
	if !node.IsArray() {
		return nil
	}

	var mask [][]uint32
	valid := true
	node.ForEach(func(_, engineNode gjson.Result) bool {
		if !engineNode.IsArray() {
			valid = false
			return false
		}

		row := []uint32{}
		engineNode.ForEach(func(_, item gjson.Result) bool {
			if item.Type != gjson.Number || item.Float() < 0 || item.Float() != math.Trunc(item.Float()) {
				valid = false
				return false
			}
			row = append(row, uint32(item.Uint()))
			return true
		})
		if !valid {
			return false
		}

		mask = append(mask, row)
		return true
	})

	if !valid {
		return nil
	}
	return mask
}

func mapClock(node gjson.Result, out *ClockInfo) {
	out.Min = jsonnode.Scalar(node, keyMin, uint64(0))
	out.Max = jsonnode.Scalar(node, keyMax, uint64(0))
}

func mapAsicIds(node gjson.Result, out *IdInfo) {
	out.GfxEngine = jsonnode.Scalar(node, keyAsicGfxEngine, uint32(0))
	out.Family = jsonnode.Scalar(node, keyAsicFamily, uint32(0))
	out.ERev = jsonnode.Scalar(node, keyAsicERev, uint32(0))
	out.Revision = jsonnode.Scalar(node, keyAsicRevision, uint32(0))
	out.Device = jsonnode.Scalar(node, keyDevice, uint32(0))
	out.Subsystem = jsonnode.Scalar(node, keyAsicSubsystem, uint32(0))
	out.Vendor = jsonnode.Scalar(node, keyAsicVendor, uint32(0))
	out.Luid = decodeLuid(jsonnode.Scalar(node, keyAsicLuid, ""))
}

// decodeLuid turns a hex string into the 8 byte adapter identifier, two
// characters per byte from low to high index. The buffer starts zeroed,
// so a short string leaves the trailing bytes zero; a fragment that is
// not valid hex decodes to zero for that byte.
func decodeLuid(s string) (luid [8]byte) {
	if len(s) > 2*len(luid) {
		s = s[:2*len(luid)]
	}

	for i := 0; i < len(s); i += 2 {
		end := min(i+2, len(s))
		b, err := strconv.ParseUint(s[i:end], 16, 8)
		if err != nil {
			b = 0
		}
		luid[i/2] = byte(b)
	}
	return luid
}

func mapGpuMemory(node gjson.Result, out *MemoryInfo) {
	out.Type = jsonnode.Scalar(node, keyType, "")
	out.MemOpsPerClock = jsonnode.Scalar(node, keyMemOpsPerClock, uint32(0))
	out.BusBitWidth = jsonnode.Scalar(node, keyMemBusBitWidth, uint32(0))
	out.Bandwidth = jsonnode.Scalar(node, keyMemBandwidth, uint64(0))

	if jsonnode.Has(node, keyMemClockHz) {
		mapClock(node.Get(keyMemClockHz), &out.MemClockHz)
	}
	if jsonnode.Has(node, keyHeaps) {
		mapHeaps(node.Get(keyHeaps), &out.Heaps)
	}
	if jsonnode.Has(node, keyExcludedVaRanges) {
		mapExcludedRanges(node.Get(keyExcludedVaRanges), &out.ExcludedVaRanges)
	}
}

// mapHeaps maps each member of the heaps object to one record. The heap
// type is the member's key, not a value level field, and records keep the
// document's member order.
func mapHeaps(node gjson.Result, out *[]HeapInfo) {
	node.ForEach(func(key, heapNode gjson.Result) bool {
		*out = append(*out, HeapInfo{
			HeapType: key.String(),
			PhysAddr: jsonnode.Scalar(heapNode, keyPhysicalAddress, uint64(0)),
			Size:     jsonnode.Scalar(heapNode, keySize, uint64(0)),
		})
		return true
	})
}

func mapExcludedRanges(node gjson.Result, out *[]ExcludedRangeInfo) {
	node.ForEach(func(_, rangeNode gjson.Result) bool {
		*out = append(*out, ExcludedRangeInfo{
			Base: jsonnode.Scalar(rangeNode, keyRangeBase, uint64(0)),
			Size: jsonnode.Scalar(rangeNode, keySize, uint64(0)),
		})
		return true
	})
}

func mapSoftwareVersion(node gjson.Result, out *SoftwareVersion) {
	out.Major = jsonnode.Scalar(node, keyMajor, uint32(0))
	out.Minor = jsonnode.Scalar(node, keyMinor, uint32(0))
	out.Misc = jsonnode.Scalar(node, keyMisc, uint32(0))
}

func mapProcesses(node gjson.Result, out *[]Process) {
	node.ForEach(func(_, processNode gjson.Result) bool {
		*out = append(*out, Process{
			Name: jsonnode.Scalar(processNode, keyName, ""),
			Path: jsonnode.Scalar(processNode, keyPath, ""),
			ID:   jsonnode.Scalar(processNode, keyProcessID, uint32(0)),
		})
		return true
	})
}
