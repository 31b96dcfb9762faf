package main

import "github.com/projetoguri/sgpg/internal/model"

func text(s string) *string { return &s }

// Roles are created in role-code order so a fresh backend assigns ids 1 to 4.
var seedRoles = []model.RoleDTO{
	{RoleTitle: "Professor", RoleDesc: text("Professor")},
	{RoleTitle: "Funcionário", RoleDesc: text("Funcionário administrativo")},
	{RoleTitle: "Coordenador", RoleDesc: text("Coordenador")},
	{RoleTitle: "Administrador", RoleDesc: text("Administrador do sistema")},
}

var seedInstrumentTypes = []model.InstrumentTypeDTO{
	{InstrumentTypeName: "Flauta", InstrumentTypeDesc: text("Sopro")},
	{InstrumentTypeName: "Violão", InstrumentTypeDesc: text("Cordas")},
	{InstrumentTypeName: "Triângulo", InstrumentTypeDesc: text("Percussão")},
	{InstrumentTypeName: "Canto", InstrumentTypeDesc: text("Voz")},
}

var seedInstrumentBrands = []model.InstrumentBrandDTO{
	{
		InstrumentBrandName: "NineFlaut",
		InstrumentBrandDesc: text("Sopro"),
		InstrumentBrandLogo: text("https://thumbs.dreamstime.com/z/%C3%ADcone-da-flauta-%C3%ADcone-do-vetor-da-silhueta-93153637.jpg"),
	},
	{
		InstrumentBrandName: "GuitarSix",
		InstrumentBrandDesc: text("Guitarra"),
		InstrumentBrandLogo: text("https://media.istockphoto.com/vectors/vector-guitar-logo-icon-vector-id1197682363"),
	},
	{
		InstrumentBrandName: "Tandara",
		InstrumentBrandDesc: text("Percussão"),
		InstrumentBrandLogo: text("https://thumbs.dreamstime.com/b/%C3%ADcone-da-percuss%C3%A3o-conceito-na-moda-do-logotipo-no-backgro-branco-131168679.jpg"),
	},
}
