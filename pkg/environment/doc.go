// Package environment names the application environments (development,
// staging, production) and carries the current one through context.Context
// and into structured logs.
//
// Configuration values are normalised with Parse, which also accepts the
// short aliases "dev", "stage" and "prod":
//
//	env := environment.Parse(cfg.AppEnv)
//	ctx = environment.WithContext(ctx, env)
//
//	if environment.IsProduction(ctx) {
//	    // production-specific behaviour
//	}
//
// LoggerExtractor plugs into logger.WithContextExtractors so every record
// logged with that context carries an "env" attribute.
//
// Missing values result in the zero value ("") and the predicates report false.
package environment
