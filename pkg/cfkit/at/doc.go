// Package at wraps AudioToolbox audio components and audio units.
//
// Components are registered by the system and never released; a Component
// is a plain handle. An audio unit instance is not reference counted: it is
// disposed exactly once by its single owner, the *Unit returned from
// Component.NewInstance.
//
//	desc := at.ComponentDesc{Type: at.TypeOutput, SubType: at.SubTypeDefaultOutput, Manufacturer: at.ManufacturerApple}
//	comp, ok := at.FindNext(at.Component{}, desc)
//	if !ok {
//		return errNoOutput
//	}
//	unit, err := comp.NewInstance()
//	if err != nil {
//		return err
//	}
//	defer unit.Close()
package at
