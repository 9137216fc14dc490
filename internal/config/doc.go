// Package config loads gitscript settings.
//
// Settings come from the environment only:
//   - GITSCRIPT_GIT, GITSCRIPT_DIR and GITSCRIPT_TIMEOUT shape each subprocess
//   - GITSCRIPT_JOBS and GITSCRIPT_DRY_RUN control how the command table runs
//   - GITSCRIPT_LOG_FILE and GITSCRIPT_LOG_MAX_* configure the rotating log file
package config
