package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"modemfw/internal/types"
)

// ParseManifest builds a firmware index from a decoded manifest. The
// parse is all-or-nothing: a single malformed entry, unsupported
// compression tag, or duplicate classification key fails the whole
// manifest and no index is returned. Callers make flashing decisions
// from this index, and a manifest that is inconsistent in one entry
// is untrustworthy as a whole.
func ParseManifest(ctx context.Context, manifest types.ManifestFile) (*FirmwareIndex, error) {
	if manifest.SchemaVersion != types.SupportedSchemaVersion {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("unsupported manifest schema version: %q", manifest.SchemaVersion))
	}

	index := newFirmwareIndex()
	fileCount := 0
	for _, device := range manifest.Devices {
		if device.DeviceID == "" {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("device entry missing device_id")
		}
		deviceType := types.NewDeviceTypeWithVariant(device.DeviceID, device.Variant)
		cache := index.cacheFor(deviceType)

		for _, entry := range device.Files {
			file, err := buildFirmwareFile(entry)
			if err != nil {
				return nil, err
			}
			if err := cache.insert(file); err != nil {
				return nil, wrapDuplicate(err, deviceType)
			}
			fileCount++
		}
	}

	log.Ctx(ctx).Debug().
		Int("devices", index.Len()).
		Int("files", fileCount).
		Msg("firmware manifest parsed")
	return index, nil
}

// buildFirmwareFile validates one manifest entry and constructs its
// immutable record, resolving the compression tag on the way.
func buildFirmwareFile(entry types.FirmwareEntry) (types.FirmwareFileInfo, error) {
	if entry.Path == "" {
		return types.FirmwareFileInfo{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("firmware entry missing path")
	}
	if entry.Version == "" {
		return types.FirmwareFileInfo{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("firmware entry missing version: " + entry.Path)
	}
	switch entry.Category {
	case types.FirmwareTypeMain, types.FirmwareTypeCarrier, types.FirmwareTypeOem:
	default:
		return types.FirmwareFileInfo{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("firmware entry %s has unknown category %q", entry.Path, entry.Category))
	}

	compression, err := CompressionFromManifest(entry.Compression)
	if err != nil {
		return types.FirmwareFileInfo{}, err
	}

	return types.FirmwareFileInfo{
		Path:         entry.Path,
		Version:      entry.Version,
		Compression:  compression,
		FirmwareType: entry.Category,
		Tag:          entry.CarrierID,
	}, nil
}

func wrapDuplicate(err error, deviceType types.DeviceType) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeOf(err)).
		WithMsg("device " + deviceType.String() + ": " + errbuilderMessage(err)).
		WithCause(err)
}

func errbuilderMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && builder.Msg != "" {
		return builder.Msg
	}
	return err.Error()
}
