/*

Package batch implements batch transactions.

> A batch transaction holds a list of messages
> that the application processes as a unit. What this means
> is we can wrap several operations within one transaction.
> The transaction fails if any of the messages fail to be processed.
> Note that decorators that don't rely on messages, like authentication,
> are only applied once per transaction, which means that the "embedded"
> messages don't hit the middleware.

*/
package batch
