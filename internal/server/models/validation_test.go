package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func strptr(s string) *string      { return &s }
func floatptr(f float64) *float64 { return &f }

func TestDestinationInput_PrepareCreate(t *testing.T) {
	tests := []struct {
		name    string
		in      DestinationInput
		wantErr string
	}{
		{name: "ok", in: DestinationInput{Name: strptr("Curug"), Description: strptr("")}},
		{name: "missing name", in: DestinationInput{Description: strptr("d")}, wantErr: "name"},
		{name: "blank name", in: DestinationInput{Name: strptr(""), Description: strptr("d")}, wantErr: "name"},
		{name: "missing description", in: DestinationInput{Name: strptr("Curug")}, wantErr: "description"},
		{
			name:    "url too long",
			in:      DestinationInput{Name: strptr("n"), Description: strptr("d"), ImageURL: strptr(strings.Repeat("a", maxURLLength+1))},
			wantErr: "image_url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.PrepareCreate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestDestinationInput_PrepareUpdate(t *testing.T) {
	assert.NoError(t, (&DestinationInput{}).PrepareUpdate())
	assert.NoError(t, (&DestinationInput{Description: strptr("")}).PrepareUpdate())
	assert.Error(t, (&DestinationInput{Name: strptr("")}).PrepareUpdate())
}

func TestPackageInput_PrepareCreate(t *testing.T) {
	t.Run("defaults benefits", func(t *testing.T) {
		in := &PackageInput{Name: strptr("Paket"), Destinations: []int64{}}
		assert.NoError(t, in.PrepareCreate())
		assert.NotNil(t, in.Benefits)
		assert.Empty(t, in.Benefits)
	})

	t.Run("keeps given benefits", func(t *testing.T) {
		in := &PackageInput{Name: strptr("Paket"), Destinations: []int64{1}, Benefits: []string{"Pemandu"}}
		assert.NoError(t, in.PrepareCreate())
		assert.Equal(t, []string{"Pemandu"}, in.Benefits)
	})

	t.Run("destinations required", func(t *testing.T) {
		err := (&PackageInput{Name: strptr("Paket")}).PrepareCreate()
		if assert.Error(t, err) {
			assert.Contains(t, err.Error(), "destinations")
		}
	})

	t.Run("negative price", func(t *testing.T) {
		err := (&PackageInput{Name: strptr("Paket"), Destinations: []int64{1}, Price: floatptr(-1)}).PrepareCreate()
		if assert.Error(t, err) {
			assert.Contains(t, err.Error(), "price")
		}
	})

	t.Run("zero price allowed", func(t *testing.T) {
		assert.NoError(t, (&PackageInput{Name: strptr("Gratis"), Destinations: []int64{1}, Price: floatptr(0)}).PrepareCreate())
	})
}

func TestPackageInput_PrepareUpdate(t *testing.T) {
	in := &PackageInput{}
	assert.NoError(t, in.PrepareUpdate())
	assert.Nil(t, in.Benefits, "update must not default absent fields")
	assert.Error(t, (&PackageInput{Price: floatptr(-5)}).PrepareUpdate())
}

func TestBlogInput_Prepare(t *testing.T) {
	assert.NoError(t, (&BlogInput{Title: strptr("Panen"), Content: strptr("isi")}).PrepareCreate())
	assert.Error(t, (&BlogInput{Title: strptr("Panen")}).PrepareCreate())
	assert.Error(t, (&BlogInput{Content: strptr("isi")}).PrepareCreate())
	assert.NoError(t, (&BlogInput{PostURL: strptr("https://ig/p/1")}).PrepareUpdate())
	assert.Error(t, (&BlogInput{Title: strptr("")}).PrepareUpdate())
}
