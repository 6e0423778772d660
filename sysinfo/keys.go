package sysinfo

// Wire keys of the system info document. These are the contract with the
// collectors that produce the JSON; they are case sensitive and fixed.
const (
	keySystem    = "system"
	keyVersion   = "version"
	keyDriver    = "driver"
	keyDevDriver = "devdriver"
	keyOs        = "os"
	keyCpus      = "cpus"
	keyGpus      = "gpus"
	keyProcesses = "processes"

	keyName        = "name"
	keyDescription = "description"
	keyHostname    = "hostname"
	keyType        = "type"
	keyMajor       = "major"
	keyMinor       = "minor"
	keyPatch       = "patch"
	keyBuild       = "build"
	keyMisc        = "misc"
	keyMin         = "min"
	keyMax         = "max"
	keySize        = "size"
	keyTag         = "tag"

	keyMemory         = "memory"
	keyMemoryPhysical = "physical"
	keyMemorySwap     = "swap"

	keyConfig                   = "config"
	keyLinux                    = "linux"
	keyWindows                  = "windows"
	keyPowerDpmWritable         = "powerDpmWritable"
	keyDrm                      = "drm"
	keyEtwSupport               = "etwSupport"
	keyEtwSupported             = "isSupported"
	keyEtwHasPermission         = "hasPermission"
	keyEtwStatusCode            = "statusCode"
	keyEtwRegistryOrUserGroup   = "needsRegistryOrUserGroup"

	keyArchitecture         = "architecture"
	keyCpuID                = "cpuId"
	keyCpuDeviceID          = "deviceId"
	keyCpuVendorID          = "vendorId"
	keyCpuVirtualization    = "virtualization"
	keyCpuPhysicalCoreCount = "numPhysicalCores"
	keyCpuLogicalCoreCount  = "numLogicalCores"
	keyCpuSpeed             = "speed"
	keyCpuTimeClockFreq     = "cpuTimeClockFreq"

	keyPci         = "pci"
	keyPciBus      = "bus"
	keyDevice      = "device"
	keyPciFunction = "function"

	keyAsic                = "asic"
	keyAsicGpuIndex        = "gpuIndex"
	keyAsicGpuCounterFreq  = "gpuCounterFreq"
	keyAsicNumSe           = "numShaderEngines"
	keyAsicNumSaPerSe      = "numShaderArraysPerEngine"
	keyAsicCuMask          = "cuMask"
	keyAsicNumCus          = "numCus"
	keyAsicEngineClockHz   = "engineClockHz"
	keyAsicIds             = "ids"
	keyAsicGfxEngine       = "gfxEngine"
	keyAsicFamily          = "family"
	keyAsicERev            = "eRev"
	keyAsicRevision        = "revision"
	keyAsicSubsystem       = "subsystem"
	keyAsicVendor          = "vendor"
	keyAsicLuid            = "luid"

	keyMemOpsPerClock   = "memOpsPerClock"
	keyMemBusBitWidth   = "busBitWidth"
	keyMemBandwidth     = "bandwidthBytesPerSec"
	keyMemClockHz       = "memClockHz"
	keyHeaps            = "heaps"
	keyPhysicalAddress  = "physicalAddress"
	keyExcludedVaRanges = "excludedVaRanges"
	keyRangeBase        = "base"

	keyBigSw = "bigSw"

	keyPath      = "path"
	keyProcessID = "processId"

	keyDriverPackagingVersion = "packagingVersion"
	keyDriverSoftwareVersion  = "softwareVersion"
	keyDriverIsClosedSource   = "isClosedSource"
)
