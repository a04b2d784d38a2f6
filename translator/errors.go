// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package translator

import "cogentcore.org/colortranslator/base/errors"

// ErrInvalidInput is returned when an input is not a color: it matches
// no color syntax, named color or color shape.
var ErrInvalidInput = errors.New("invalid color input")
