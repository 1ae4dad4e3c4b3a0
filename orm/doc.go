/*
Package orm provides an easy to use db wrapper.

The state space is broken into prefixed sections called buckets.

  - Each bucket contains only one type of object.
  - It has a primary key and may have any number of secondary indexes,
    unique or not.
  - It can be registered with the query router, which exposes the primary
    key and every index for queries.

Extensions usually do not use Bucket directly but a ModelBucket, which
reads and writes models without the Object wrapper.
*/
package orm
