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

package locale

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walteh/richtypo/pkg/rule"
)

func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()
	delete(registry, id)
}

func testDefinition(id string) Definition {
	return Definition{
		ID:     id,
		Params: rule.NewParams(map[string]string{"mark": "!"}),
		Rules: []Named{
			{Name: "cats", Factory: rule.Template("cats", rule.Pair{Pattern: `cat`, Replacement: `dog`})},
			{Name: "dogs", Factory: rule.Template("dogs", rule.Pair{Pattern: `dog`, Replacement: `wolf{{mark}}`})},
			{Name: "birds", Factory: rule.Template("birds", rule.Pair{Pattern: `bird`, Replacement: `owl`})},
		},
		Groups: []Group{
			{Name: "pets", Aliases: []string{"pet"}, Rules: []string{"cats", "dogs"}},
		},
		All: []string{"birds", "cats"},
	}
}

func TestBuild(t *testing.T) {
	l, err := Build(testDefinition("test"))
	require.NoError(t, err)

	assert.Equal(t, "test", l.ID())
	assert.Equal(t, []string{"cats", "dogs", "birds"}, l.Names())
	assert.Equal(t, []string{"pet", "pets"}, l.GroupNames())
	assert.True(t, l.Has("pet"))
	assert.True(t, l.Has(All))
	assert.False(t, l.Has("fish"))

	ctx := context.Background()
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "all", input: "cat bird dog", want: "dog owl dog"},
		{name: "pets", input: "cat bird", want: "wolf! bird"},
		{name: "pet", input: "cat bird", want: "wolf! bird"},
		{name: "dogs", input: "cat dog", want: "cat wolf!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := l.Pipeline(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Run(ctx, tt.input))
		})
	}
}

func TestPipelines(t *testing.T) {
	l, err := Build(testDefinition("test"))
	require.NoError(t, err)

	p, err := l.Pipelines("birds", "pets")
	require.NoError(t, err)
	assert.Equal(t, []string{"birds", "cats", "dogs"}, p.Names())

	_, err = l.Pipelines("birds", "fish")
	assert.ErrorIs(t, err, ErrUnknownName)
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Definition)
		param  string
		target error
	}{
		{
			name:   "missing_id",
			modify: func(d *Definition) { d.ID = "" },
			param:  "id",
		},
		{
			name:   "missing_param",
			modify: func(d *Definition) { d.Params = rule.NewParams(nil) },
			param:  "mark",
			target: rule.ErrMissingParam,
		},
		{
			name:   "unknown_rule_in_group",
			modify: func(d *Definition) { d.Groups[0].Rules = []string{"fish"} },
			param:  "groups",
			target: ErrUnknownName,
		},
		{
			name:   "unknown_rule_in_all",
			modify: func(d *Definition) { d.All = []string{"fish"} },
			param:  All,
			target: ErrUnknownName,
		},
		{
			name:   "reserved_rule_name",
			modify: func(d *Definition) { d.Rules[0].Name = All },
			param:  "rules",
		},
		{
			name: "duplicate_rule",
			modify: func(d *Definition) {
				d.Rules = append(d.Rules, d.Rules[0])
			},
			param:  "rules",
			target: ErrDuplicateName,
		},
		{
			name:   "duplicate_alias",
			modify: func(d *Definition) { d.Groups[0].Aliases = []string{"pets"} },
			param:  "groups",
			target: ErrDuplicateName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := testDefinition("test")
			tt.modify(&def)

			_, err := Build(def)
			require.Error(t, err)

			var cerr *rule.ConfigurationError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tt.param, cerr.Param)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}

func TestWithParams(t *testing.T) {
	def := testDefinition("test")
	l, err := Build(def.WithParams(map[string]string{"mark": "?"}))
	require.NoError(t, err)

	p, err := l.Pipeline("dogs")
	require.NoError(t, err)
	assert.Equal(t, "wolf?", p.Run(context.Background(), "dog"))

	v, _ := def.Params.Lookup("mark")
	assert.Equal(t, "!", v)
}

func TestUnknownName(t *testing.T) {
	l, err := Build(testDefinition("test"))
	require.NoError(t, err)

	_, err = l.Pipeline("fish")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownName)
	assert.Contains(t, err.Error(), `"fish"`)
	assert.Contains(t, err.Error(), "pets")
}

func TestRegistry(t *testing.T) {
	l, err := Register(testDefinition("registry-test"))
	require.NoError(t, err)
	t.Cleanup(func() { unregister("registry-test") })

	got, err := Get("registry-test")
	require.NoError(t, err)
	assert.Same(t, l, got)
	assert.Contains(t, IDs(), "registry-test")

	p, err := Lookup("registry-test", "cats")
	require.NoError(t, err)
	assert.Equal(t, "dog", p.Run(context.Background(), "cat"))

	_, err = Register(testDefinition("registry-test"))
	assert.ErrorIs(t, err, ErrDuplicateLocale)

	_, err = Get("nope")
	assert.ErrorIs(t, err, ErrUnknownLocale)
	var cerr *rule.ConfigurationError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "locale", cerr.Param)

	_, err = Lookup("registry-test", "fish")
	assert.ErrorIs(t, err, ErrUnknownName)
}

func TestMustRegisterPanics(t *testing.T) {
	assert.Panics(t, func() { MustRegister(Definition{}) })
}

func TestRegistryConcurrentAccess(t *testing.T) {
	_, err := Register(testDefinition("concurrent-test"))
	require.NoError(t, err)
	t.Cleanup(func() { unregister("concurrent-test") })

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p, err := Lookup("concurrent-test", All)
			assert.NoError(t, err)
			assert.Equal(t, "dog owl", p.Run(context.Background(), "cat bird"))
			assert.NotEmpty(t, IDs())
		}()
	}
	wg.Wait()
}
