package preflight

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"atmosprobe/internal/config"
	"atmosprobe/internal/deps"
	"atmosprobe/internal/probecache"
)

// CheckFFprobe verifies the inspection binary resolves and runs.
func CheckFFprobe(ctx context.Context, binary string) Result {
	const name = "FFprobe"

	resolved := deps.ResolveFFprobePath(binary)
	status := deps.CheckBinaries([]deps.Requirement{{Name: name, Command: resolved}})[0]
	if !status.Available {
		return Result{Name: name, Detail: status.Detail}
	}
	version, err := deps.FFprobeVersion(ctx, resolved)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", resolved, err)}
	}
	return Result{Name: name, Passed: true, Detail: version}
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckCacheDatabase opens an existing probe cache and confirms its schema.
// A missing file passes; it is created on first scan.
func CheckCacheDatabase(ctx context.Context, path string) Result {
	const name = "Probe cache"

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (not created yet)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}

	cache, err := probecache.Open(ctx, path, nil)
	if err != nil {
		if errors.Is(err, probecache.ErrSchemaMismatch) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: outdated schema, delete the file)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	defer cache.Close()

	count, err := cache.Count(ctx)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (%d entries)", path, count)}
}

// CheckSystemDeps reports availability of every external binary.
func CheckSystemDeps(cfg *config.Config) []deps.Status {
	return deps.CheckBinaries([]deps.Requirement{
		{
			Name:        "FFprobe",
			Command:     deps.ResolveFFprobePath(cfg.FFprobeBinary()),
			Description: "Required for stream inspection",
		},
	})
}
