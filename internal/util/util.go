package util

import (
	"fmt"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/mem"
	"net/http"
	"runtime"
	"strings"
)

func Stats() func() {
	return func() {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		log.Debug().Msgf("Alloc: %d MB, TotalAlloc: %d MB, Requested: %d MB",
			ms.Alloc/1024/1024, ms.TotalAlloc/1024/1024, ms.Sys/1024/1024)
		log.Debug().Msgf("Mallocs: %d, Frees: %d, GC: %d", ms.Mallocs, ms.Frees, ms.NumGC)
		log.Debug().Msgf("HeapObjects: %d", ms.HeapObjects)
	}
}

func ApplyCliSettings(verbose bool, profile bool, pprofPort uint16) {
	if verbose {
		log.Warn().Msgf("Verbosity up")
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if profile {
		log.Info().Msgf("Profiling is enabled for this session. Server will listen on port %d", pprofPort)
		go func() {
			if err := http.ListenAndServe(fmt.Sprintf(":%d", pprofPort), nil); err != nil {
				log.Error().Err(err).Msgf("Error starting profiling server on port %d", pprofPort)
				return
			}
		}()
	}
}

// CheckRam warns when holding items in memory would exceed available RAM.
// Used by the bulk audit before it loads a whole wordlist.
func CheckRam(items uint64, bytesPerItem uint64) {
	required := (items * bytesPerItem) / (1024 * 1024)
	if memStat, err := mem.VirtualMemory(); err == nil {
		log.Debug().Msgf("System has %.2f MiB of RAM available", float64(memStat.Available)/(1024*1024))
		if required > memStat.Available/(1024*1024) {
			log.Fatal().Msgf("Your system does not have the minimum required RAM to execute this process.")
		}
	} else {
		log.Warn().Msgf("Estimated memory use for %d items is %d MiB. ^C now if your system cannot spare it.", items, required)
	}
}

// CheckDiskSpace stops the process when the target drive cannot hold an
// expected download of sizeMb.
func CheckDiskSpace(fileName string, sizeMb int) {
	if parts, err := disk.Partitions(false); err == nil {
		for _, part := range parts {
			if strings.Index(fileName, part.Mountpoint) >= 0 {
				if usage, err := disk.Usage(part.Mountpoint); err == nil {
					log.Debug().Msgf("%s has %.2f GiB free", part.Mountpoint, float64(usage.Free)/(1024*1024*1024))
					required := uint64(sizeMb) * 1024 * 1024
					if required > usage.Free {
						log.Fatal().Msgf("Drive %s does not have sufficient space free (%d MB) for the download. Please free some space before trying again", part.Mountpoint, sizeMb)
					}
				} else {
					log.Debug().Err(err).Msgf("Error getting current storage sizes")
				}
			}
		}
	} else {
		log.Debug().Err(err).Msgf("Error getting current storage sizes")
	}
}
