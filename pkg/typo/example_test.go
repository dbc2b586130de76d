// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package typo_test

import (
	"context"
	"fmt"

	"github.com/walteh/richtypo/pkg/rule"
	"github.com/walteh/richtypo/pkg/typo"
)

func ExampleApply() {
	ellipses := rule.Must(rule.New("ellipses", rule.Pair{Pattern: `\.{2,}`, Replacement: "…"}))

	out := typo.Apply(context.Background(), "Wait... <code>x...</code>", ellipses)
	fmt.Println(out)
	// Output: Wait… <code>x...</code>
}
