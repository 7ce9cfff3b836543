// Copyright 2023 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

// Package org provides a lossless parser for Org-mode documents.
//
// Parse turns a UTF-8 source string into a concrete syntax tree (CST):
// a green tree of immutable, shareable nodes and tokens whose
// concatenated token text equals the input byte-for-byte, and a red
// tree giving each node an absolute offset and a parent pointer. The
// package does not read files, render HTML, or interpret the semantics
// of TODO keywords, table formulas, or Babel blocks; it only recognizes
// structure.
package org
