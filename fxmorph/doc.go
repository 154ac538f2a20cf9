// Package fxmorph wires the morpher into an Fx application.
//
// Module provides a *morph.Morpher built from whatever config.Parser and
// config.DataFetcher the graph holds; FileModule provides both from a file
// path. Provide turns a morph target into an Fx constructor, in the same way
// a config section becomes an injectable value:
//
//	app := fxmorph.NewApp(
//	    fxmorph.WithConfigFile("config.yaml"),
//	    fxmorph.WithModules(
//	        fx.Provide(fxmorph.Provide[*DBConfig](morph.StartFrom("db"))),
//	        fx.Invoke(func(cfg *DBConfig) { ... }),
//	    ),
//	)
package fxmorph
