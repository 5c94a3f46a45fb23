// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

var (
	// audit
	inputFile string
	// root
	verbose bool
	// root
	profile bool
	// root
	pprofPort uint16
	// audit, download
	outFile string
	// analyze
	interactive bool
	// analyze
	fullName string
	// analyze
	email string
	// analyze
	birthDate string
	// suggest
	count int
	// audit
	threads int
	// audit, download
	overwrite bool
	// download
	listName string
	// serve
	selfTLS bool
	// serve
	tlsCert string
	// serve
	tlsKey string
	// serve
	port uint16
)
