package model

import "time"

// InstrumentTypeDTO is the write payload for an instrument type.
type InstrumentTypeDTO struct {
	InstrumentTypeName string  `json:"instrumenttype_name"`
	InstrumentTypeDesc *string `json:"instrumenttype_desc"`
	CreatedBy          int     `json:"created_by"`
	IsDeleted          bool    `json:"is_deleted"`
}

// InstrumentType is a kind of instrument (flute, guitar...).
type InstrumentType struct {
	InstrumentTypeDTO
	InstrumentTypeID int        `json:"instrumenttype_id"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        *time.Time `json:"updated_at"`
	DeletedAt        *time.Time `json:"deleted_at"`
}

func (t InstrumentType) Deleted() bool          { return t.IsDeleted }
func (t InstrumentType) DTO() InstrumentTypeDTO { return t.InstrumentTypeDTO }

// InstrumentBrandDTO is the write payload for an instrument brand.
type InstrumentBrandDTO struct {
	InstrumentBrandName string  `json:"instrumentbrand_name"`
	InstrumentBrandDesc *string `json:"instrumentbrand_desc"`
	InstrumentBrandLogo *string `json:"instrumentbrand_logo"`
	CreatedBy           int     `json:"created_by"`
	IsDeleted           bool    `json:"is_deleted"`
}

// InstrumentBrand is an instrument manufacturer.
type InstrumentBrand struct {
	InstrumentBrandDTO
	InstrumentBrandID int        `json:"instrumentbrand_id"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at"`
	DeletedAt         *time.Time `json:"deleted_at"`
}

func (b InstrumentBrand) Deleted() bool           { return b.IsDeleted }
func (b InstrumentBrand) DTO() InstrumentBrandDTO { return b.InstrumentBrandDTO }

// InstrumentDTO is the write payload for an instrument.
type InstrumentDTO struct {
	InstrumentType    int    `json:"instrument_type"`
	InstrumentModel   string `json:"instrument_model"`
	InstrumentBrand   int    `json:"instrument_brand"`
	InstrumentStudent *int   `json:"instrument_student"`
	CreatedBy         int    `json:"created_by"`
	IsDeleted         bool   `json:"is_deleted"`
}

// Instrument is an instrument owned by the program, optionally lent to a student.
type Instrument struct {
	InstrumentDTO
	InstrumentID int              `json:"instrument_id"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    *time.Time       `json:"updated_at"`
	DeletedAt    *time.Time       `json:"deleted_at"`
	Brand        *InstrumentBrand `json:"instrumentbrand,omitempty"`
	Type         *InstrumentType  `json:"instrumenttype,omitempty"`
}

func (i Instrument) Deleted() bool      { return i.IsDeleted }
func (i Instrument) DTO() InstrumentDTO { return i.InstrumentDTO }

func (d InstrumentTypeDTO) SoftDeleted() InstrumentTypeDTO   { d.IsDeleted = true; return d }
func (d InstrumentBrandDTO) SoftDeleted() InstrumentBrandDTO { d.IsDeleted = true; return d }
func (d InstrumentDTO) SoftDeleted() InstrumentDTO           { d.IsDeleted = true; return d }
