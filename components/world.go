package components

import (
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/obstacles"
	"github.com/Mehmet-Adil/Muscle-Survivors/shared/scrollgrid"
	"github.com/yohamta/donburi"
)

type GridData struct {
	*scrollgrid.Grid
}

var Grid = donburi.NewComponentType[GridData]()

type FieldData struct {
	*obstacles.Field
}

var Field = donburi.NewComponentType[FieldData]()
