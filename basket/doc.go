// SPDX-License-Identifier: MIT

// Package basket splits a customer basket into delivery groups.
//
// A configuration maps delivery-group labels to the product categories each
// group can serve, plus an optional catalog resolving product names to
// categories. Splitter.Split turns the basket into a set-cover instance
// (universe = categories in the basket, family = groups restricted to them),
// solves it exactly with package setcover and assigns every product to
// exactly one chosen group.
//
// Ranking of candidate splits:
//
//  1. fewer delivery groups;
//  2. a larger biggest group (products are assigned greedily, the group
//     serving most of the remaining products first);
//  3. alphabetical group labels.
//
// Configuration files are JSON (.json) or YAML (.yaml, .yml) in one of two
// shapes:
//
//	{"groups": {"Courier": ["snacks"]}, "catalog": {"Chips": "snacks"}}
//	{"Chips": ["Courier", "Pick-up point"]}
//
// The second, flat shape lists the delivery groups of each product; every
// product then acts as its own category.
//
// Errors:
//
//   - ErrConfigNotFound   the configuration file does not exist.
//   - ErrConfigInvalid    the configuration content cannot be used.
//   - ErrUnknownProduct   a basket product cannot be resolved to a category.
//   - ErrNoDeliveryGroup  no combination of groups serves the basket.
package basket
