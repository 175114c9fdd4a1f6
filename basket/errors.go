// SPDX-License-Identifier: MIT

package basket

import "errors"

var (
	// ErrConfigNotFound indicates the configuration file does not exist.
	ErrConfigNotFound = errors.New("basket: configuration file not found")

	// ErrConfigInvalid indicates the configuration content is malformed or
	// semantically unusable.
	ErrConfigInvalid = errors.New("basket: configuration file is invalid")

	// ErrUnknownProduct indicates a basket product has no category.
	ErrUnknownProduct = errors.New("basket: unknown product")

	// ErrNoDeliveryGroup indicates no combination of delivery groups serves
	// every category of the basket.
	ErrNoDeliveryGroup = errors.New("basket: no delivery group covers the basket")
)
