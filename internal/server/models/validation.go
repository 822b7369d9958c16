package models

import validation "github.com/go-ozzo/ozzo-validation"

const maxURLLength = 2048

// PrepareCreate checks the fields a new destination needs.
func (in *DestinationInput) PrepareCreate() error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Name, validation.Required),
		validation.Field(&in.Description, validation.NotNil),
		validation.Field(&in.ImageURL, validation.Length(0, maxURLLength)),
		validation.Field(&in.LocationURL, validation.Length(0, maxURLLength)),
	)
}

func (in *DestinationInput) PrepareUpdate() error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Name, validation.NilOrNotEmpty),
		validation.Field(&in.ImageURL, validation.Length(0, maxURLLength)),
		validation.Field(&in.LocationURL, validation.Length(0, maxURLLength)),
	)
}

// PrepareCreate checks a new package and defaults its benefits to an empty
// list.
func (in *PackageInput) PrepareCreate() error {
	err := validation.ValidateStruct(in,
		validation.Field(&in.Name, validation.Required),
		validation.Field(&in.Price, validation.Min(0.0)),
		validation.Field(&in.Destinations, validation.NotNil),
		validation.Field(&in.ImageURL, validation.Length(0, maxURLLength)),
	)
	if err != nil {
		return err
	}
	if in.Benefits == nil {
		in.Benefits = []string{}
	}
	return nil
}

func (in *PackageInput) PrepareUpdate() error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Name, validation.NilOrNotEmpty),
		validation.Field(&in.Price, validation.Min(0.0)),
		validation.Field(&in.ImageURL, validation.Length(0, maxURLLength)),
	)
}

func (in *BlogInput) PrepareCreate() error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Title, validation.Required),
		validation.Field(&in.Content, validation.NotNil),
		validation.Field(&in.ImageURL, validation.Length(0, maxURLLength)),
		validation.Field(&in.PostURL, validation.Length(0, maxURLLength)),
	)
}

func (in *BlogInput) PrepareUpdate() error {
	return validation.ValidateStruct(in,
		validation.Field(&in.Title, validation.NilOrNotEmpty),
		validation.Field(&in.ImageURL, validation.Length(0, maxURLLength)),
		validation.Field(&in.PostURL, validation.Length(0, maxURLLength)),
	)
}
