package form

import (
	"github.com/projetoguri/sgpg/internal/format"
	"github.com/projetoguri/sgpg/internal/model"
)

// Instrument is the instrument create/edit form. Student is the optional
// student the instrument is lent to.
type Instrument struct {
	Model   string `form:"model" binding:"required,max=255"`
	Type    int    `form:"type" binding:"required,gt=0"`
	Brand   int    `form:"brand" binding:"required,gt=0"`
	Student int    `form:"student" binding:"gte=0"`
}

func InstrumentFrom(i model.Instrument) Instrument {
	return Instrument{
		Model:   i.InstrumentModel,
		Type:    i.InstrumentType,
		Brand:   i.InstrumentBrand,
		Student: idValue(i.InstrumentStudent),
	}
}

func (f Instrument) fill(dto *model.InstrumentDTO) {
	dto.InstrumentModel = trim(f.Model)
	dto.InstrumentType = f.Type
	dto.InstrumentBrand = f.Brand
	dto.InstrumentStudent = optionalID(f.Student)
}

func (f Instrument) CreateDTO(actor *model.Session) model.InstrumentDTO {
	dto := model.InstrumentDTO{CreatedBy: actor.EmployeeID}
	f.fill(&dto)
	return dto
}

func (f Instrument) UpdateDTO(_ *model.Session, stored model.Instrument) model.InstrumentDTO {
	dto := stored.DTO()
	f.fill(&dto)
	return dto
}

// InstrumentType is the instrument type create/edit form.
type InstrumentType struct {
	Name string `form:"name" binding:"required,max=255"`
	Desc string `form:"desc" binding:"max=1000"`
}

func InstrumentTypeFrom(t model.InstrumentType) InstrumentType {
	return InstrumentType{Name: t.InstrumentTypeName, Desc: text(t.InstrumentTypeDesc)}
}

func (f InstrumentType) CreateDTO(actor *model.Session) model.InstrumentTypeDTO {
	return model.InstrumentTypeDTO{
		InstrumentTypeName: trim(f.Name),
		InstrumentTypeDesc: format.Blank(f.Desc),
		CreatedBy:          actor.EmployeeID,
	}
}

func (f InstrumentType) UpdateDTO(_ *model.Session, stored model.InstrumentType) model.InstrumentTypeDTO {
	dto := stored.DTO()
	dto.InstrumentTypeName = trim(f.Name)
	dto.InstrumentTypeDesc = format.Blank(f.Desc)
	return dto
}

// InstrumentBrand is the instrument brand create/edit form.
type InstrumentBrand struct {
	Name string `form:"name" binding:"required,max=255"`
	Desc string `form:"desc" binding:"max=1000"`
	Logo string `form:"logo" binding:"omitempty,url,max=1000"`
}

func InstrumentBrandFrom(b model.InstrumentBrand) InstrumentBrand {
	return InstrumentBrand{
		Name: b.InstrumentBrandName,
		Desc: text(b.InstrumentBrandDesc),
		Logo: text(b.InstrumentBrandLogo),
	}
}

func (f InstrumentBrand) fill(dto *model.InstrumentBrandDTO) {
	dto.InstrumentBrandName = trim(f.Name)
	dto.InstrumentBrandDesc = format.Blank(f.Desc)
	dto.InstrumentBrandLogo = format.Blank(f.Logo)
}

func (f InstrumentBrand) CreateDTO(actor *model.Session) model.InstrumentBrandDTO {
	dto := model.InstrumentBrandDTO{CreatedBy: actor.EmployeeID}
	f.fill(&dto)
	return dto
}

func (f InstrumentBrand) UpdateDTO(_ *model.Session, stored model.InstrumentBrand) model.InstrumentBrandDTO {
	dto := stored.DTO()
	f.fill(&dto)
	return dto
}
