// Package logger builds *slog.Logger values through functional options and
// provides attribute helpers that keep key names consistent across packages.
//
// New selects a text or JSON handler, applies static attributes and wraps the
// result with LogHandlerDecorator, which runs ContextExtractor callbacks on
// every record so request- or batch-scoped values end up in the log without
// being passed explicitly.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.AppEnv, "brncheck"),
//	    logger.WithLevel(level),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	b, err := brn.Parse(input)
//	if err != nil {
//	    log.WarnContext(ctx, "rejected registration number",
//	        logger.BRNInput(input),
//	        logger.ErrorKind(err),
//	        logger.Error(err),
//	    )
//	}
//	log.InfoContext(ctx, "accepted", logger.BRN("brn", b))
//
// # Registration numbers
//
// brn.BRN implements slog.LogValuer and logs in grouped form. BRNInput is for
// raw user input that may or may not be valid: it logs only the prefix and
// class code of valid input and masks everything else.
//
// # Options
//
//   - WithDevelopment / WithStaging / WithProduction / WithEnvironment: per-environment defaults.
//   - WithFormat / WithTextFormatter / WithJSONFormatter: output format.
//   - WithLevel, ParseLevel: minimum level.
//   - WithOutput: destination, stderr by default.
//   - WithAttr: static attributes.
//   - WithContextExtractors / WithContextValue: attributes pulled from context.
//
// Error, Errors, ErrorKind, BRN and BRNInput return an empty slog.Attr for
// nil or zero input, which slog drops, so no nil checks are needed at call
// sites.
package logger
