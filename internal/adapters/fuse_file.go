package adapters

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"forgeconf/internal/ports"
	"forgeconf/internal/types"
)

// FuseSentinel precedes the fuse wire in every Electron executable.
const FuseSentinel = "dL7pKGdnNz796PbbjQWNKmHXBZaB9tsX"

const (
	fuseDisabled byte = '0'
	fuseEnabled  byte = '1'
	fuseRemoved  byte = 'r'
)

// FuseFileAdapter rewrites the fuse wire of an executable on disk. Universal
// macOS binaries carry one wire per architecture; all of them are updated.
type FuseFileAdapter struct{}

func NewFuseFileAdapter() FuseFileAdapter {
	return FuseFileAdapter{}
}

func (a FuseFileAdapter) Flip(ctx context.Context, executable string, config types.FuseConfig) error {
	info, err := os.Stat(executable)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("electron executable not found").
			WithCause(err)
	}
	data, err := os.ReadFile(executable)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read electron executable").
			WithCause(err)
	}
	wires, err := flipFuseWires(data, config)
	if err != nil {
		return err
	}
	if err := os.WriteFile(executable, data, info.Mode().Perm()); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write electron executable").
			WithCause(err)
	}
	log.Ctx(ctx).Debug().Str("executable", executable).Int("wires", wires).Msg("fuses flipped")
	return nil
}

// flipFuseWires updates data in place and returns the number of wires found.
func flipFuseWires(data []byte, config types.FuseConfig) (int, error) {
	sentinel := []byte(FuseSentinel)
	options := sortedFuseOptions(config.Fuses)
	wires := 0
	offset := 0
	for {
		idx := bytes.Index(data[offset:], sentinel)
		if idx == -1 {
			break
		}
		start := offset + idx + len(sentinel)
		if start+2 > len(data) {
			return 0, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("fuse wire is truncated")
		}
		version := data[start]
		if version != config.Version {
			return 0, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg(fmt.Sprintf("fuse version %d is not supported, expected %d", version, config.Version))
		}
		length := int(data[start+1])
		wire := start + 2
		if wire+length > len(data) {
			return 0, errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("fuse wire is truncated")
		}
		for _, option := range options {
			if int(option) >= length {
				return 0, errbuilder.New().
					WithCode(errbuilder.CodeFailedPrecondition).
					WithMsg(fmt.Sprintf("fuse %s is not present in this electron version", option))
			}
			pos := wire + int(option)
			if data[pos] == fuseRemoved {
				return 0, errbuilder.New().
					WithCode(errbuilder.CodeFailedPrecondition).
					WithMsg(fmt.Sprintf("fuse %s has been removed from this electron version", option))
			}
			data[pos] = fuseDisabled
			if config.Fuses[option] {
				data[pos] = fuseEnabled
			}
		}
		wires++
		offset = wire + length
	}
	if wires == 0 {
		return 0, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("fuse sentinel not found, executable is not a supported electron binary")
	}
	return wires, nil
}

func sortedFuseOptions(fuses map[types.FuseOption]bool) []types.FuseOption {
	options := make([]types.FuseOption, 0, len(fuses))
	for option := range fuses {
		options = append(options, option)
	}
	sort.Slice(options, func(i, j int) bool {
		return options[i] < options[j]
	})
	return options
}

var _ ports.FusePort = FuseFileAdapter{}
