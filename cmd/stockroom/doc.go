// Command stockroom is the stock management CLI.
//
//	stockroom                      # start a console session
//	stockroom console --seed       # start with the sample catalogue
//	stockroom --max-products 20    # raise the product limit
//	stockroom catalogue            # print the sample catalogue
//	stockroom catalogue --csv      # same, as CSV
//	stockroom version
//
// Configuration is read from config/app.json, then .env, then the
// environment (MAX_PRODUCTS, LOG_LEVEL, LOG_FILE, STORAGE_DISK, S3_*,
// METRICS_EXPORT and friends).
package main
