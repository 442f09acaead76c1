// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"strconv"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/soulbound/sbt"
)

func checkAccount(name string, account string) (string, error) {
	if "" == account {
		return "", fmt.Errorf("%s account is required", name)
	}
	if err := sbt.ValidateAccount(account); nil != err {
		return "", fmt.Errorf("%s account: %q  error: %s", name, account, err)
	}
	return account, nil
}

func checkAccounts(accounts []string) ([]string, error) {
	if 0 == len(accounts) {
		return nil, fmt.Errorf("at least one account is required")
	}
	for _, a := range accounts {
		if _, err := checkAccount("", a); nil != err {
			return nil, err
		}
	}
	return accounts, nil
}

// accepts repeated flags and comma separated lists
func splitList(items []string) []string {
	result := make([]string, 0, len(items))
	for _, item := range items {
		for _, s := range strings.Split(item, ",") {
			if s = strings.TrimSpace(s); "" != s {
				result = append(result, s)
			}
		}
	}
	return result
}

func checkTokenIds(items []string) ([]sbt.TokenId, error) {
	items = splitList(items)
	if 0 == len(items) {
		return nil, fmt.Errorf("at least one token is required")
	}
	ids := make([]sbt.TokenId, len(items))
	for i, s := range items {
		n, err := strconv.ParseUint(s, 10, 64)
		if nil != err || 0 == n {
			return nil, fmt.Errorf("invalid token id: %q", s)
		}
		ids[i] = sbt.TokenId(n)
	}
	return ids, nil
}

func checkClasses(items []string) ([]sbt.ClassId, error) {
	items = splitList(items)
	if 0 == len(items) {
		return nil, fmt.Errorf("at least one class is required")
	}
	classes := make([]sbt.ClassId, len(items))
	for i, s := range items {
		n, err := strconv.ParseUint(s, 10, 64)
		if nil != err || 0 == n {
			return nil, fmt.Errorf("invalid class: %q", s)
		}
		classes[i] = sbt.ClassId(n)
	}
	return classes, nil
}

// nil when the flag was not given
func optionalString(c *cli.Context, name string) *string {
	if !c.IsSet(name) {
		return nil
	}
	s := c.String(name)
	return &s
}

func optionalUint32(c *cli.Context, name string) *uint32 {
	if !c.IsSet(name) {
		return nil
	}
	n := uint32(c.Uint(name))
	return &n
}

// token specs from a JSON file or from the flags for a single owner
func checkTokenSpecs(c *cli.Context) ([]sbt.TokenSpec, error) {
	if fileName := c.String("json"); "" != fileName {
		data, err := ioutil.ReadFile(fileName)
		if nil != err {
			return nil, err
		}
		var specs []sbt.TokenSpec
		if err := json.Unmarshal(data, &specs); nil != err {
			return nil, fmt.Errorf("token specs: %q  error: %s", fileName, err)
		}
		return specs, nil
	}

	owner, err := checkAccount("owner", c.String("owner"))
	if nil != err {
		return nil, err
	}
	classes, err := checkClasses(c.StringSlice("class"))
	if nil != err {
		return nil, err
	}

	var expiresAt *uint64
	if c.IsSet("expires-at") {
		n := c.Uint64("expires-at")
		expiresAt = &n
	}
	reference := optionalString(c, "reference")

	var referenceHash []byte
	if s := c.String("reference-hash"); "" != s {
		referenceHash, err = hex.DecodeString(s)
		if nil != err {
			return nil, fmt.Errorf("reference hash: %q  error: %s", s, err)
		}
	}

	metadata := make([]sbt.TokenMetadata, len(classes))
	for i, class := range classes {
		metadata[i] = sbt.TokenMetadata{
			Class:         class,
			ExpiresAt:     expiresAt,
			Reference:     reference,
			ReferenceHash: referenceHash,
		}
	}
	return []sbt.TokenSpec{{Owner: owner, Metadata: metadata}}, nil
}
