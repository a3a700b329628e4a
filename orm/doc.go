/*
Package orm provides an easy to use db wrapper

Break state space into prefixed sections called Buckets.
* Each bucket contains only one type of object.
* Keys are prefixed with the bucket name and a colon.
* Easy queries for one and iteration by prefix.

Counters keep a single monotonic number under a well known key.
*/
package orm
