// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2024 Harvestmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"unicode/utf8"

	"github.com/harvestmark-inc/harvestmarkd/fault"
)

// IsValidDescriptor - check a single classification tag
func IsValidDescriptor(descriptor string) bool {
	n := utf8.RuneCountInString(descriptor)
	return n >= minDescriptorLength && n <= maxDescriptorLength
}

// IsValidDescriptorSet - check a whole classification tag collection
func IsValidDescriptorSet(descriptors []string) bool {
	if len(descriptors) < MinDescriptors || len(descriptors) > MaxDescriptors {
		return false
	}
	for _, descriptor := range descriptors {
		if !IsValidDescriptor(descriptor) {
			return false
		}
	}
	return true
}

// CheckDescriptors - as IsValidDescriptorSet but reporting which bound failed
func CheckDescriptors(descriptors []string) error {
	if len(descriptors) < MinDescriptors || len(descriptors) > MaxDescriptors {
		return fault.DescriptorCountOutOfRange
	}
	for _, descriptor := range descriptors {
		n := utf8.RuneCountInString(descriptor)
		if n < minDescriptorLength {
			return fault.DescriptorTooShort
		}
		if n > maxDescriptorLength {
			return fault.DescriptorTooLong
		}
	}
	return nil
}

// Validate - ensure every field is inside its bound
//
// called before any store mutation; a record outside these bounds must
// never be written
func (record *AssetRecord) Validate() error {

	if record.Cultivator.IsZero() {
		return fault.MissingParameters
	}

	switch n := utf8.RuneCountInString(record.Produce); {
	case n < minProduceLength:
		return fault.ProduceNameTooShort
	case n > maxProduceLength:
		return fault.ProduceNameTooLong
	}

	if record.Volume < minVolume || record.Volume >= volumeLimit {
		return fault.VolumeOutOfRange
	}

	switch n := utf8.RuneCountInString(record.Location); {
	case n < minLocationLength:
		return fault.LocationTooShort
	case n > maxLocationLength:
		return fault.LocationTooLong
	}

	return CheckDescriptors(record.Descriptors)
}
